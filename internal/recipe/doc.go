// Package recipe defines the Recipe value rendered by ladle and the pure
// normalizer that builds it from raw TheMealDB records.
//
// Ingredients come from the twenty numbered ingredient/measure slots in index
// order. A slot is skipped when its ingredient is blank or the literal "null";
// otherwise it renders as "<measure> <ingredient>", or the bare ingredient when
// the measure is missing. Instructions are split on newlines, trimmed, and
// blank lines dropped.
package recipe

// Package vedictok tokenizes Sanskrit text written in Devanāgarī into a
// sequence of linguistically meaningful units while guaranteeing
// byte-exact reversibility: with PreserveWhitespace and
// PreserveVedicAccents left at their default true, concatenating the
// emitted tokens in order always reproduces the (NFC-normalized) input.
//
// Beyond segmentation, the engine attaches morphological analyses
// (inflectional case/number/gender, derivational suffix kind) and
// proposes phonetic-junction (sandhi) splits for compounds and
// externally-joined word forms. When evidence for a split is
// insufficient the engine always prefers the safe, reversible
// segmentation over a confident-but-lossy one.
package vedictok

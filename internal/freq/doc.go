// Package freq builds word frequency tables from token streams.
//
// Two tables are produced per run from the same stream: a raw table over
// the unfiltered tokens and a filtered table over the stream with
// stopwords removed. Counts are over exact lowercase token strings; no
// stemming or lemmatization is applied.
package freq

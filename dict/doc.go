// Package dict implements category dictionaries used as pattern sources.
//
// A dictionary maps named categories to ordered entry lists. Entries may be
// multi-token ("New York"); Flatten joins their tokens with a matrix's
// concatenator so they match single concatenated feature labels
// ("New_York").
//
// Dictionaries can be loaded from YAML files mapping each category to a
// list of entries:
//
//	positive:
//	  - good
//	  - well done
//	negative:
//	  - bad
package dict

/*
Package config loads the optional treetools settings file.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +-----------+-----------+-----------+
	      |           |           |           |
	+-----+-----+ +---+---+ +-----+-----+
	|   YAML    | |  HCL  | |   JSON    |
	| Parser    | |Parser | |  Parser   |
	+-----------+ +-------+ +-----------+

🎯 Purpose:
- Reads ignore patterns and the token join separator from a file
- Picks a parser by file extension
- Validates patterns before any traversal starts

No settings file is read unless one is named explicitly; command line flags
always win over file values.

🔍 Example (.treetools.yaml):

	ignore:
	  - ".git"
	  - "vendor/**"
	separator: " "

The same settings in HCL (.treetools.hcl):

	ignore    = [".git", "vendor/**"]
	separator = " "
*/
package config

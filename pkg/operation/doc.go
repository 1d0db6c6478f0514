/*
Package operation implements the file-level operations of treetools.

	+-------------+       +-----------+
	|   FileSet   | ----> | Operation |
	|   (walk)    |       | (per file)|
	+-------------+       +-----+-----+
	                            |
	                     +------+------+
	                     |    text     |
	                     | (tokens)    |
	                     +-------------+

🎯 Purpose:
- Rewrite: read, retokenize, substitute and overwrite every file of a FileSet
- CountLines: read every file of a FileSet and aggregate newline segment counts

🔄 Flow:
1. Receives a FileSet from the walk package
2. Visits files strictly one at a time, in order
3. Delegates content transformation to the text package
4. Reports progress per file and returns an explicit report

⚡ Key Responsibilities:
- Exactly one read and at most one write per file
- Stopping at the first failing file with a FileError
- Never holding state between runs: totals are return values

📝 Design Philosophy:
Files are overwritten in place with no temp file and no rename. A failure
stops the run; files rewritten before the failure stay rewritten, and the
returned error names the file and phase that failed.
*/
package operation

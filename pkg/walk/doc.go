/*
Package walk enumerates the regular files under a root directory.

	+-------------+       +-----------+
	|   Walker    | ----> |  Scanner  |
	| (recursion) |       | (one dir) |
	+------+------+       +-----------+
	       |
	   FileSet

🎯 Purpose:
- Produces the FileSet every other treetools operation iterates
- Visits each directory exactly once, depth first
- Validates every directory listing before trusting it

🔄 Flow:
1. Scanner lists one directory as a Listing (dir, sub-directories, files)
2. Walker checks the Listing shape and fails with a TraversalError if it is malformed
3. Files are appended as dir + "/" + name, sub-directories are queued for the next visit
4. Ignore patterns (doublestar globs on the root-relative path) prune files and directories

📝 Notes:
An empty directory is a valid, empty Listing. A malformed Listing is never treated as empty,
so callers can tell the two apart with errors.Is(err, ErrMalformedListing).

Symlinks are not followed and are reported as files; permission errors are returned as-is
from the Scanner.

🔍 Example:

	files, err := walk.Enumerate(ctx, "./src")
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Println(f)
	}
*/
package walk

package flatfile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"reelhouse/internal/catalog"
	"reelhouse/internal/fileutil"
	"reelhouse/internal/ledger"
)

// Load reads the content file and then the accounts file. Missing files
// yield empty state. The returned error is non-nil only when a file exists
// but cannot be opened; per-record problems are returned as diagnostics.
func Load(contentPath, accountsPath string) (*catalog.Catalog, *ledger.Accounts, []error, error) {
	var diags []error

	cat := catalog.New()
	if err := withFile(contentPath, func(r io.Reader) {
		var contentDiags []error
		cat, contentDiags = decodeCatalog(r, filepath.Base(contentPath))
		diags = append(diags, contentDiags...)
	}); err != nil {
		return nil, nil, nil, fmt.Errorf("open content file: %w", err)
	}

	accounts := ledger.NewAccounts()
	if err := withFile(accountsPath, func(r io.Reader) {
		var accountDiags []error
		accounts, accountDiags = decodeAccounts(r, filepath.Base(accountsPath), cat)
		diags = append(diags, accountDiags...)
	}); err != nil {
		return nil, nil, nil, fmt.Errorf("open accounts file: %w", err)
	}

	return cat, accounts, diags, nil
}

func withFile(path string, fn func(io.Reader)) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	defer file.Close()
	fn(file)
	return nil
}

// Save writes both files. Each file is written to a temporary sibling and
// renamed into place.
func Save(contentPath, accountsPath string, cat *catalog.Catalog, accounts *ledger.Accounts) error {
	if err := fileutil.WriteAtomic(contentPath, 0o644, func(w io.Writer) error { return EncodeCatalog(w, cat) }); err != nil {
		return fmt.Errorf("save content file: %w", err)
	}
	if err := fileutil.WriteAtomic(accountsPath, 0o644, func(w io.Writer) error { return EncodeAccounts(w, accounts) }); err != nil {
		return fmt.Errorf("save accounts file: %w", err)
	}
	return nil
}

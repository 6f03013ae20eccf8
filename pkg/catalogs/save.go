package catalogs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/unisonlabs/unison/pkg/errors"
)

// Bytes serializes the catalog to its canonical on-disk JSON form:
// two-space indentation, fixed field order, trailing newline. Serialization
// is deterministic, so identical catalogs produce identical bytes.
func (c *BrandCatalog) Bytes() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, errors.WrapParse("json", "", err)
	}
	return append(data, '\n'), nil
}

// Save writes the catalog to path atomically: the document lands via a
// temp-file rename, so a failed run never leaves a partial catalog behind.
func (c *BrandCatalog) Save(path string) error {
	data, err := c.Bytes()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.WrapIO("write", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errors.WrapIO("rename", path, err)
	}
	return nil
}

// LoadBrandCatalog reads a previously saved brand catalog.
func LoadBrandCatalog(path string) (*BrandCatalog, error) {
	catalog := &BrandCatalog{}
	ok, err := loadJSON(path, catalog)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.NewNotFoundError("brand catalog file", path)
	}
	return catalog, nil
}

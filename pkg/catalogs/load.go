package catalogs

import (
	"encoding/json"
	"os"

	"github.com/unisonlabs/unison/pkg/errors"
)

// LoadCommercial reads a per-brand commercial source document. A missing
// file is not an error: it yields an empty document so the engine degrades
// gracefully to single-source operation.
func LoadCommercial(path string) (*CommercialDocument, error) {
	doc := &CommercialDocument{}
	ok, err := loadJSON(path, doc)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &CommercialDocument{}, nil
	}
	return doc, nil
}

// LoadManufacturer reads a per-brand manufacturer source document, with the
// same missing-file semantics as LoadCommercial.
func LoadManufacturer(path string) (*ManufacturerDocument, error) {
	doc := &ManufacturerDocument{}
	ok, err := loadJSON(path, doc)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &ManufacturerDocument{}, nil
	}
	return doc, nil
}

// loadJSON reads and decodes a JSON file into v. The boolean reports whether
// the file existed.
func loadJSON(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.WrapIO("read", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return true, errors.WrapParse("json", path, err)
	}
	return true, nil
}

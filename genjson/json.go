package genjson

import (
	"encoding/json"
	"os"

	"github.com/Invicton-Labs/go-stackerr"
)

func Unmarshal[T any](data []byte) (v T, err stackerr.Error) {
	if err := json.Unmarshal(data, &v); err != nil {
		return v, stackerr.Wrap(err)
	}
	return v, nil
}

// UnmarshalFile reads the file at the given path and decodes its
// JSON contents into a value of type T.
func UnmarshalFile[T any](path string) (v T, err stackerr.Error) {
	data, rerr := os.ReadFile(path)
	if rerr != nil {
		return v, stackerr.Errorf("failed to read %s: %v", path, rerr)
	}
	return Unmarshal[T](data)
}

package media

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxUploadBytes caps a single uploaded file at 20 MiB.
const maxUploadBytes = 20 << 20

// FileFromForm reads the named multipart field into a File. A missing field
// is not an error: it returns (nil, nil) so optional image inputs stay
// optional.
func FileFromForm(r *http.Request, field string) (*File, error) {
	f, hdr, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, fmt.Errorf("read form file %q: %w", field, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read form file %q: %w", field, err)
	}
	if len(data) > maxUploadBytes {
		return nil, fmt.Errorf("file %q exceeds the %d byte limit", hdr.Filename, maxUploadBytes)
	}

	return &File{Name: hdr.Filename, Data: data}, nil
}

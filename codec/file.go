package codec

import (
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"

	"github.com/mlkit-go/datasets/dataset"
)

// ReadFile decodes the file at path, which may be a local path or an http(s)
// URL. An empty format means detect from the extension.
func ReadFile(path string, format Format) (*dataset.Table, error) {
	if format == "" {
		detected, err := DetectFormat(path)
		if err != nil {
			return nil, err
		}
		format = detected
	}
	c, err := ForFormat(format)
	if err != nil {
		return nil, err
	}

	var r io.ReadCloser
	if IsRemote(path) {
		r, err = fetch(path)
	} else {
		r, err = os.Open(path)
		if os.IsNotExist(err) {
			err = errors.Wrapf(dataset.ErrNotFound, "file %q", path)
		}
	}
	if err != nil {
		return nil, err
	}
	defer r.Close()

	table, err := c.Decode(r)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return table, nil
}

// WriteFile encodes the table to path in the given format.
func WriteFile(path string, format Format, t *dataset.Table) error {
	c, err := ForFormat(format)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(ErrEncode, "create %q: %s", path, err)
	}
	if err := c.Encode(f, t); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return f.Close()
}

// IsRemote reports whether path is an http(s) URL rather than a local file.
func IsRemote(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// fetch downloads a remote dataset file, retrying transient failures.
func fetch(url string) (io.ReadCloser, error) {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.Logger = nil

	resp, err := client.Get(url)
	if err != nil {
		return nil, errors.Wrapf(ErrDecode, "fetch %q: %s", url, err)
	}
	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, errors.Wrapf(dataset.ErrNotFound, "remote file %q", url)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, errors.Wrapf(ErrDecode, "fetch %q: unexpected status %d", url, resp.StatusCode)
	}
	return resp.Body, nil
}

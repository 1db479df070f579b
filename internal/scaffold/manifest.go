package scaffold

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	oerrors "github.com/createapp/cli/internal/errors"
	"github.com/createapp/cli/internal/output"
)

// ManifestFile is the template manifest that receives the package name.
const ManifestFile = "package.json"

// Manifest is a JSON object whose members keep their source order and their
// original encoding. Only members changed through Set are re-encoded.
type Manifest struct {
	members []member
	index   map[string]int
}

type member struct {
	key   string
	value json.RawMessage
}

// ParseManifest parses data as a single JSON object. Duplicate keys keep the
// position of their first occurrence and the value of their last.
func ParseManifest(data []byte) (*Manifest, error) {
	m, err := parseObject(data)
	if err != nil {
		return nil, oerrors.NewParseError(ManifestFile, err)
	}
	return m, nil
}

func parseObject(data []byte) (*Manifest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, eofAsUnexpected(err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("top-level value is %v, not an object", describeToken(tok))
	}

	m := &Manifest{index: make(map[string]int)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, eofAsUnexpected(err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %v, not a string", describeToken(tok))
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, eofAsUnexpected(err)
		}
		m.put(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return nil, eofAsUnexpected(err)
	}
	if tok, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected %v after top-level object", describeToken(tok))
	}
	return m, nil
}

func eofAsUnexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

func describeToken(tok json.Token) string {
	switch v := tok.(type) {
	case json.Delim:
		return fmt.Sprintf("%q", v.String())
	case string:
		return fmt.Sprintf("string %q", v)
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T %v", v, v)
	}
}

func (m *Manifest) put(key string, value json.RawMessage) {
	if i, ok := m.index[key]; ok {
		m.members[i].value = value
		return
	}
	m.index[key] = len(m.members)
	m.members = append(m.members, member{key: key, value: value})
}

// Get returns the raw encoding of key's value.
func (m *Manifest) Get(key string) (json.RawMessage, bool) {
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.members[i].value, true
}

// Set replaces key's value in place, or appends key when it is new.
func (m *Manifest) Set(key string, value any) error {
	raw, err := encode(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	m.put(key, raw)
	return nil
}

// Marshal encodes the manifest with two-space indentation and a trailing
// newline.
func (m *Manifest) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, mem := range m.members {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := encode(mem.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(mem.value)
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func encode(v any) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// RewriteManifest reads the manifest at the root of src, sets its name and
// writes it into dstDir.
func RewriteManifest(src fs.FS, dstDir, name string) error {
	data, err := fs.ReadFile(src, ManifestFile)
	if err != nil {
		return oerrors.NewFilesystemError("reading template manifest", ManifestFile, err)
	}

	m, err := ParseManifest(data)
	if err != nil {
		return err
	}
	if previous, ok := m.Get("name"); ok {
		output.Debug("replacing template name", "from", string(previous), "to", name)
	}
	if err := m.Set("name", name); err != nil {
		return err
	}

	out, err := m.Marshal()
	if err != nil {
		return oerrors.NewParseError(ManifestFile, err)
	}

	target := filepath.Join(dstDir, ManifestFile)
	if err := os.WriteFile(target, out, 0o644); err != nil {
		return oerrors.NewFilesystemError("writing manifest", target, err)
	}

	output.Debug("wrote manifest", "path", target, "name", name)
	return nil
}

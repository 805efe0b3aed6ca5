package documents

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	assert.Equal(t, "Jane Doe", Name("/tmp/resumes/Jane Doe.pdf"))
	assert.Equal(t, "jd", Name("jd"))
	assert.Equal(t, "backend.v2", Name("backend.v2.md"))
}

func TestLoadText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Jane Doe.TXT")
	require.NoError(t, os.WriteFile(path, []byte("Skills\nGo"), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &Document{Name: "Jane Doe", Text: "Skills\nGo"}, doc)
}

func TestLoadUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.odt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadBrokenPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.md")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("A"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("B"), 0o644))

	docs, err := LoadAll([]string{b, a})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "b", docs[0].Name)
	assert.Equal(t, "A", docs[1].Text)

	_, err = LoadAll([]string{a, filepath.Join(dir, "missing.txt")})
	assert.Error(t, err)
}

func TestXMLToText(t *testing.T) {
	xml := `<w:document><w:body><w:p><w:r><w:t>Skills</w:t></w:r></w:p><w:p><w:r><w:t>Go &amp; Rust</w:t><w:tab/><w:t>SQL</w:t></w:r></w:p></w:body></w:document>`
	assert.Equal(t, "Skills\nGo & Rust\tSQL", xmlToText(xml))
}

func TestExtractEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		expect string
	}{
		{
			name:   "campus address wins",
			text:   "Jane Doe | jane.doe@gmail.com | JDoe_42@TAMU.edu",
			expect: "jdoe_42@tamu.edu",
		},
		{
			name:   "academic domain before generic",
			text:   "Contact: jane@example.com or j.doe@cs.stanford.edu",
			expect: "j.doe@cs.stanford.edu",
		},
		{
			name:   "academic ac domain",
			text:   "email: a.smith@ox.ac.uk",
			expect: "a.smith@ox.ac.uk",
		},
		{
			name:   "generic address",
			text:   "John Smith\nEmail: John.Smith@Example.com\nPhone: 555",
			expect: "john.smith@example.com",
		},
		{
			name:   "no address",
			text:   "Reach me at my phone only",
			expect: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, ExtractEmail(tt.text))
		})
	}
}

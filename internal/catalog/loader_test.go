package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/noor-names/internal/catalog"
)

func TestLoadFile_Embedded(t *testing.T) {
	records, err := catalog.LoadFile("")
	require.NoError(t, err)
	require.NotEmpty(t, records)

	c := catalog.New(records, 6)
	yusuf, ok := c.Lookup("Yusuf", catalog.Male)
	require.True(t, ok)
	assert.Equal(t, "يوسف", yusuf.ArabicName)
}

func TestLoadFile_FromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.yaml")
	doc := `names:
  - english_name: Hamza
    arabic_name: حمزة
    meaning: Strong
    gender: male
    popularity: 3
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	records, err := catalog.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, catalog.NameRecord{
		EnglishName: "Hamza", ArabicName: "حمزة", Meaning: "Strong", Gender: catalog.Male, Popularity: 3,
	}, records[0])
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := catalog.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown field": "names:\n  - english_name: A\n    gender: male\n    origin: x\n",
		"bad gender":    "names:\n  - english_name: A\n    gender: other\n",
		"no name":       "names:\n  - gender: male\n",
		"duplicate":     "names:\n  - {english_name: A, gender: male}\n  - {english_name: A, gender: male}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestParse_SameNameDifferentGender(t *testing.T) {
	records, err := catalog.Parse([]byte("names:\n  - {english_name: Nur, gender: male}\n  - {english_name: Nur, gender: female}\n"))
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestParse_Empty(t *testing.T) {
	records, err := catalog.Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCatalog_IsolatedFromInput(t *testing.T) {
	records := []catalog.NameRecord{{EnglishName: "Ali", Gender: catalog.Male, Popularity: 1}}
	c := catalog.New(records, 6)
	records[0].EnglishName = "changed"

	all := c.All()
	assert.Equal(t, "Ali", all[0].EnglishName)
	all[0].EnglishName = "mutated"
	assert.Equal(t, "Ali", c.All()[0].EnglishName)
	assert.Equal(t, 1, c.Len())
}

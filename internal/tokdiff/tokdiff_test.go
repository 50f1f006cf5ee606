package tokdiff

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybertec-postgresql/sqlitelex/pkg/tokenizer"
)

func TestFormattingIsIgnored(t *testing.T) {
	a := "SELECT a, b FROM t WHERE c = 1;"
	b := "select a,\n       b\n  from t -- all rows\n where c = 1 ;"

	res := Compare(a, b, Options{FoldKeywords: true})
	assert.True(t, res.Equal)
	assert.Zero(t, res.Insertions)
	assert.Zero(t, res.Deletions)
}

func TestKeywordCaseMattersByDefault(t *testing.T) {
	res := Compare("SELECT 1", "select 1", Options{})
	assert.False(t, res.Equal)
	assert.Equal(t, 1, res.Insertions)
	assert.Equal(t, 1, res.Deletions)
}

func TestKeepSpace(t *testing.T) {
	assert.True(t, Compare("SELECT 1", "SELECT  1", Options{}).Equal)
	assert.False(t, Compare("SELECT 1", "SELECT  1", Options{KeepSpace: true}).Equal)
}

func TestEditsCarrySourceTokens(t *testing.T) {
	res := Compare("SELECT a FROM t", "SELECT a, b FROM t", Options{})
	require.False(t, res.Equal)
	assert.Equal(t, 2, res.Insertions)
	assert.Equal(t, 0, res.Deletions)

	var inserted []string
	for _, e := range res.Edits {
		if e.Op == OpInsert {
			for _, tok := range e.Tokens {
				inserted = append(inserted, tok.Text)
			}
		}
	}
	assert.Equal(t, []string{",", "b"}, inserted)
}

func TestEditsReassembleInputs(t *testing.T) {
	a := "UPDATE t SET x = 1, y = 'a' WHERE id = ?;"
	b := "UPDATE t SET y = 'b', z = 2 WHERE id = :id;"
	res := Compare(a, b, Options{})

	var left, right []string
	for _, e := range res.Edits {
		for _, tok := range e.Tokens {
			if e.Op != OpInsert {
				left = append(left, tok.Text)
			}
			if e.Op != OpDelete {
				right = append(right, tok.Text)
			}
		}
	}
	assert.Equal(t, significantTexts(a), left)
	assert.Equal(t, significantTexts(b), right)
}

func significantTexts(sql string) []string {
	var out []string
	for _, tok := range tokenizer.Tokenize(sql) {
		if tok.Kind != tokenizer.Space {
			out = append(out, tok.Text)
		}
	}
	return out
}

func TestString(t *testing.T) {
	res := Compare("SELECT a", "SELECT b", Options{})
	assert.Equal(t, "  SELECT\n- a\n+ b\n", res.String())

	res = Compare("a", "a\n", Options{KeepSpace: true})
	assert.Equal(t, "  a\n+ \"\\n\"\n", res.String())
}

func TestKindDistinguishesEqualText(t *testing.T) {
	// Same bytes, different kinds: the second input's literal is unclosed.
	res := Compare("'x'", "'x", Options{})
	assert.False(t, res.Equal)
}

func TestManyDistinctTokens(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 60000; i++ {
		sb.WriteString("c")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(" ")
	}
	src := sb.String()
	assert.True(t, Compare(src, src, Options{}).Equal)

	res := Compare(src, src+"tail", Options{})
	require.Len(t, res.Edits, 2)
	assert.Equal(t, "tail", res.Edits[1].Tokens[0].Text)
	assert.Equal(t, "c59999", res.Edits[0].Tokens[59999].Text)
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "equal", OpEqual.String())
	assert.Equal(t, "delete", OpDelete.String())
	assert.Equal(t, "insert", OpInsert.String())
}

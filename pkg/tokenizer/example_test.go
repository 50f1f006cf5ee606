package tokenizer_test

import (
	"fmt"

	"github.com/cybertec-postgresql/sqlitelex/pkg/tokenizer"
)

func ExampleTokenize() {
	for _, tok := range tokenizer.Tokenize("SELECT x FROM t WHERE y = ?1") {
		if tok.Kind == tokenizer.Space {
			continue
		}
		fmt.Println(tok)
	}
	// Output:
	// Select "SELECT"
	// Id "x"
	// From "FROM"
	// Id "t"
	// Where "WHERE"
	// Id "y"
	// Equal "="
	// Variable "?1"
}

func ExampleTokenizer_All() {
	tk := tokenizer.New("a||'b'")
	for tok := range tk.All() {
		fmt.Println(tok.Offset, tok.Kind, tok.Text)
	}
	// Output:
	// 0 Id a
	// 1 Concat ||
	// 3 String 'b'
}

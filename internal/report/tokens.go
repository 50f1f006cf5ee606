package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/cybertec-postgresql/sqlitelex/internal/errors"
	"github.com/cybertec-postgresql/sqlitelex/pkg/tokenizer"
)

// TokenFormat selects how a token stream is printed
type TokenFormat string

const (
	TokenFormatText TokenFormat = "text" // offset, kind and quoted text per line
	TokenFormatJSON TokenFormat = "json" // one JSON object per line
)

// SupportedTokenFormats returns the token stream format names
func SupportedTokenFormats() []string {
	return []string{string(TokenFormatText), string(TokenFormatJSON)}
}

// tokenRecord is the JSON shape of one token
type tokenRecord struct {
	Offset int                 `json:"offset"`
	Kind   tokenizer.TokenKind `json:"kind"`
	Code   int                 `json:"code"`
	Text   string              `json:"text"`
}

// WriteTokens prints every token of src.  Space tokens are skipped unless
// keepSpace is set.  It returns the number of tokens written.
func WriteTokens(w io.Writer, src string, format TokenFormat, keepSpace bool) (int, error) {
	var enc *json.Encoder
	switch format {
	case TokenFormatText:
	case TokenFormatJSON:
		enc = json.NewEncoder(w)
	default:
		return 0, errors.UnsupportedFormat(string(format), SupportedTokenFormats())
	}

	n := 0
	for tok := range tokenizer.New(src).All() {
		if tok.Kind == tokenizer.Space && !keepSpace {
			continue
		}
		var err error
		if enc != nil {
			err = enc.Encode(tokenRecord{Offset: tok.Offset, Kind: tok.Kind, Code: tok.Kind.Code(), Text: tok.Text})
		} else {
			_, err = fmt.Fprintf(w, "%d\t%s\t%s\n", tok.Offset, tok.Kind, strconv.Quote(tok.Text))
		}
		if err != nil {
			return n, fmt.Errorf("failed to write token at offset %d: %w", tok.Offset, err)
		}
		n++
	}
	return n, nil
}

package tokenizer

import "sort"

/*
 * keywords maps the upper-case spelling of every SQLite reserved word to its
 * TokenKind.
 *
 * Several spellings share one kind: the join operators (CROSS, FULL, INNER,
 * LEFT, NATURAL, OUTER, RIGHT) are all JoinKw, the three CURRENT_* words are
 * CurrentTime, GLOB and REGEXP are Like, and TEMPORARY is Temp.
 *
 * ISNULL and NOTNULL are single keywords.  Because lookup happens only after
 * the whole identifier has been scanned, "ISNULL" is never split into Is+Null.
 *
 * The map is written once at package init and only read afterwards, so it is
 * safe to share between goroutines.
 */
var keywords = map[string]TokenKind{
	"ABORT": Abort, "ACTION": Action, "ADD": Add, "AFTER": After,
	"ALL": All, "ALTER": Alter, "ANALYZE": Analyze, "AND": And,
	"AS": As, "ASC": Asc, "ATTACH": Attach, "AUTOINCREMENT": AutoIncrement,
	"BEFORE": Before, "BEGIN": Begin, "BETWEEN": Between, "BY": By,
	"CASCADE": Cascade, "CASE": Case, "CAST": Cast, "CHECK": Check,
	"COLLATE": Collate, "COLUMN": ColumnKw, "COMMIT": Commit,
	"CONFLICT": Conflict, "CONSTRAINT": Constraint, "CREATE": Create,
	"CROSS": JoinKw, "CURRENT_DATE": CurrentTime, "CURRENT_TIME": CurrentTime,
	"CURRENT_TIMESTAMP": CurrentTime, "DATABASE": Database,
	"DEFAULT": Default, "DEFERRED": Deferred, "DEFERRABLE": Deferrable,
	"DELETE": Delete, "DESC": Desc, "DETACH": Detach, "DISTINCT": Distinct,
	"DROP": Drop, "END": End, "EACH": Each, "ELSE": Else, "ESCAPE": Escape,
	"EXCEPT": Except, "EXCLUSIVE": Exclusive, "EXISTS": Exists,
	"EXPLAIN": Explain, "FAIL": Fail, "FOR": For, "FOREIGN": Foreign,
	"FROM": From, "FULL": JoinKw, "GLOB": Like, "GROUP": Group,
	"HAVING": Having, "IF": If, "IGNORE": Ignore, "IMMEDIATE": Immediate,
	"IN": In, "INDEX": Index, "INDEXED": Indexed, "INITIALLY": Initially,
	"INNER": JoinKw, "INSERT": Insert, "INSTEAD": Instead,
	"INTERSECT": Intersect, "INTO": Into, "IS": Is, "ISNULL": IsNull,
	"JOIN": Join, "KEY": Key, "LEFT": JoinKw, "LIKE": Like, "LIMIT": Limit,
	"MATCH": Match, "NATURAL": JoinKw, "NO": No, "NOT": Not,
	"NOTNULL": NotNull, "NULL": Null, "OF": Of, "OFFSET": Offset, "ON": On,
	"OR": Or, "ORDER": Order, "OUTER": JoinKw, "PLAN": Plan,
	"PRAGMA": Pragma, "PRIMARY": Primary, "QUERY": Query, "RAISE": Raise,
	"RECURSIVE": Recursive, "REFERENCES": References, "REGEXP": Like,
	"REINDEX": Reindex, "RELEASE": Release, "RENAME": Rename,
	"REPLACE": Replace, "RESTRICT": Restrict, "RIGHT": JoinKw,
	"ROLLBACK": Rollback, "ROW": Row, "SAVEPOINT": Savepoint,
	"SELECT": Select, "SET": Set, "TABLE": Table, "TEMP": Temp,
	"TEMPORARY": Temp, "THEN": Then, "TO": To, "TRANSACTION": Transaction,
	"TRIGGER": Trigger, "UNION": Union, "UNIQUE": Unique, "UPDATE": Update,
	"USING": Using, "VACUUM": Vacuum, "VALUES": Values, "VIEW": View,
	"VIRTUAL": Virtual, "WHEN": When, "WHERE": Where, "WITH": With,
	"WITHOUT": Without,
}

// maxKeywordLen is the length of the longest spelling (CURRENT_TIMESTAMP).
const maxKeywordLen = 17

// LookupKeyword returns the keyword kind for word, which must be a complete
// identifier span. Matching ignores ASCII case only.
func LookupKeyword(word string) (TokenKind, bool) {
	if len(word) < 2 || len(word) > maxKeywordLen {
		return 0, false
	}
	var buf [maxKeywordLen]byte
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		buf[i] = c
	}
	kind, ok := keywords[string(buf[:len(word)])]
	return kind, ok
}

// Keywords returns every keyword spelling in sorted order.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for w := range keywords {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

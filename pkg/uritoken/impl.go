/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uritoken

import (
	"encoding/base64"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/google/uuid"
)

var (
	uriLexer    = mustLexer(rules)
	uriSymbols  = uriLexer.Symbols()
	searchLexer = mustLexer(searchRules)
	// jsonType marks a JSON array or object which was cut out of the token stream
	jsonType = minSymbol(uriSymbols) - 1

	durationPattern = regexp.MustCompile(`^-?[Pp](?:\d+[Dd])?(?:[Tt](?:\d+[Hh])?(?:\d+[Mm])?(?:\d+(?:\.\d+)?[Ss])?)?$`)
	sridPattern     = regexp.MustCompile(`^srid=\d{1,8};`)
)

func mustLexer(rr []struct{ name, pattern string }) *lexer.StatefulDefinition {
	simple := make([]lexer.SimpleRule, 0, len(rr))
	for _, r := range rr {
		simple = append(simple, lexer.SimpleRule{Name: r.name, Pattern: r.pattern})
	}
	return lexer.MustSimple(simple)
}

func minSymbol(symbols map[string]lexer.TokenType) lexer.TokenType {
	m := lexer.EOF
	for _, t := range symbols {
		m = min(m, t)
	}
	return m
}

// lexAt splits input[offset:] into raw tokens, shifting positions by offset.
// The trailing EOF token is dropped.
func lexAt(def *lexer.StatefulDefinition, input string, offset int) ([]lexer.Token, error) {
	l, err := def.LexString("", input[offset:])
	if err != nil {
		return nil, err
	}
	tokens, err := lexer.ConsumeAll(l)
	if err != nil {
		return nil, err
	}
	tokens = tokens[:len(tokens)-1]
	for i := range tokens {
		tokens[i].Pos.Offset += offset
	}
	return tokens, nil
}

// Next consumes a token of the specified kind and returns true.
// If the next token is of another kind then the position is not changed and false is returned.
func (t *Tokenizer) Next(k Kind) bool {
	switch k {
	case Kind_BWS:
		for t.isType(0, tokWhitespace) {
			t.pos++
		}
		return true
	case Kind_EOF:
		if t.pos < len(t.tokens) {
			return false
		}
		t.last = span{start: len(t.input)}
		return true
	}

	m, ok := t.match(k)
	if !ok {
		return false
	}
	first, last := &t.tokens[t.pos+m.from], &t.tokens[t.pos+m.to-1]
	t.last = span{
		start: first.Pos.Offset,
		text:  t.input[first.Pos.Offset : last.Pos.Offset+len(last.Value)],
	}
	t.pos += m.n
	return true
}

// Text returns the text of the last consumed token
func (t *Tokenizer) Text() string { return t.last.text }

// Position returns the input offset of the last consumed token
func (t *Tokenizer) Position() int { return t.last.start }

// Offset returns the input offset of the next unconsumed token
func (t *Tokenizer) Offset() int {
	if t.pos < len(t.tokens) {
		return t.tokens[t.pos].Pos.Offset
	}
	return len(t.input)
}

// Remaining returns the unconsumed input
func (t *Tokenizer) Remaining() string { return t.input[t.Offset():] }

// Input returns the whole tokenized text
func (t *Tokenizer) Input() string { return t.input }

// Mark saves the current position to return to with Reset
func (t *Tokenizer) Mark() Mark { return Mark{pos: t.pos, last: t.last} }

func (t *Tokenizer) Reset(m Mark) {
	t.pos = m.pos
	t.last = m.last
}

// Skip consumes n bytes of raw input from the current offset and lexes the rest of input again.
// Used to hand over text which has its own grammar, e.g. $search inside $expand
func (t *Tokenizer) Skip(n int) error {
	start := t.Offset()
	end := min(start+n, len(t.input))
	rest, err := lexAt(uriLexer, t.input, end)
	if err != nil {
		return err
	}
	t.tokens = append(t.tokens[:t.pos:t.pos], rest...)
	t.last = span{start: start, text: t.input[start:end]}
	return nil
}

// Consumed raw tokens and the raw token range [from, to) which makes the token text
type match struct{ n, from, to int }

var single = match{1, 0, 1}

func (t *Tokenizer) match(k Kind) (match, bool) {
	if p, ok := punctuation[k]; ok {
		return single, t.isValue(0, tokPunct, p)
	}
	if kw, ok := keywords[k]; ok {
		return single, t.isValue(0, tokKeyword, kw)
	}
	if op, ok := binaryOperators[k]; ok {
		return match{3, 1, 2}, t.isType(0, tokWhitespace) && t.isValue(1, tokIdent, op) && t.isType(2, tokWhitespace)
	}
	if name, ok := methods[k]; ok {
		return t.matchMethod(name)
	}
	if g, ok := geoKinds[k]; ok {
		return single, t.isType(0, tokGeo) && g.matches(t.value(0))
	}

	switch k {
	case Kind_Max:
		return single, t.isValue(0, tokIdent, "max")
	case Kind_Any:
		return single, t.isValue(0, tokIdent, "any") && t.isValue(1, tokPunct, "(")
	case Kind_All:
		return single, t.isValue(0, tokIdent, "all") && t.isValue(1, tokPunct, "(")
	case Kind_AscSuffix:
		return match{2, 1, 2}, t.isType(0, tokWhitespace) && t.isValue(1, tokIdent, "asc")
	case Kind_DescSuffix:
		return match{2, 1, 2}, t.isType(0, tokWhitespace) && t.isValue(1, tokIdent, "desc")
	case Kind_Null:
		return single, t.isValue(0, tokIdent, "null")
	case Kind_BooleanValue:
		v := t.value(0)
		return single, t.isType(0, tokIdent) && (strings.EqualFold(v, "true") || strings.EqualFold(v, "false"))
	case Kind_StringValue:
		return single, t.isType(0, tokString)
	case Kind_IntegerValue:
		return single, t.isType(0, tokNumber) && !strings.ContainsAny(t.value(0), ".eE")
	case Kind_DecimalValue:
		v := t.value(0)
		return single, t.isType(0, tokNumber) && strings.Contains(v, ".") && !strings.ContainsAny(v, "eE")
	case Kind_DoubleValue:
		return t.matchDouble()
	case Kind_DateValue:
		return single, t.isType(0, tokDate) && validDate(t.value(0))
	case Kind_DateTimeOffsetValue:
		return single, t.isType(0, tokDateTimeOffset) && validDateTimeOffset(t.value(0))
	case Kind_TimeOfDayValue:
		return single, t.isType(0, tokTimeOfDay) && validTimeOfDay(t.value(0))
	case Kind_DurationValue:
		return single, t.isType(0, tokDuration) && durationPattern.MatchString(quoted(t.value(0)))
	case Kind_GuidValue:
		if !t.isType(0, tokGuid) {
			return single, false
		}
		_, err := uuid.Parse(t.value(0))
		return single, err == nil
	case Kind_BinaryValue:
		return single, t.isType(0, tokBinary) && validBinary(quoted(t.value(0)))
	case Kind_EnumValue:
		return single, t.isType(0, tokEnum)
	case Kind_JSONArrayOrObject:
		return single, t.matchJSON()
	case Kind_ODataIdentifier:
		return single, t.isType(0, tokIdent) && utf8.RuneCountInString(t.value(0)) <= maxIdentifierLength
	case Kind_QualifiedName:
		return t.matchQualifiedName()
	case Kind_ParameterAliasName:
		return single, t.isType(0, tokAlias)
	case Kind_MinusOperator:
		if !t.isValue(0, tokPunct, "-") || t.isValue(1, tokIdent, "INF") {
			return single, false
		}
		if t.isType(1, tokWhitespace) {
			return match{2, 0, 1}, true
		}
		return single, true
	case Kind_NotOperator:
		return match{2, 0, 1}, t.isValue(0, tokIdent, "not") && t.isType(1, tokWhitespace)
	}
	return match{}, false
}

func (t *Tokenizer) matchDouble() (match, bool) {
	switch {
	case t.isType(0, tokNumber) && strings.ContainsAny(t.value(0), "eE"):
		return single, true
	case t.isValue(0, tokIdent, "INF"), t.isValue(0, tokIdent, "NaN"):
		return single, true
	case t.isValue(0, tokPunct, "-") && t.isValue(1, tokIdent, "INF"):
		return match{2, 0, 2}, true
	}
	return match{}, false
}

// Method name tokens followed by the opening parenthesis
func (t *Tokenizer) matchMethod(name string) (match, bool) {
	i := 0
	for n, part := range strings.Split(name, ".") {
		if n > 0 {
			if !t.isValue(i, tokPunct, ".") {
				return match{}, false
			}
			i++
		}
		if !t.isValue(i, tokIdent, part) {
			return match{}, false
		}
		i++
	}
	return match{i + 1, 0, i}, t.isValue(i, tokPunct, "(")
}

// At least two dot-separated identifiers
func (t *Tokenizer) matchQualifiedName() (match, bool) {
	if !t.isType(0, tokIdent) {
		return match{}, false
	}
	i := 1
	for t.isValue(i, tokPunct, ".") && t.isType(i+1, tokIdent) {
		i += 2
	}
	return match{i, 0, i}, i > 1
}

// matchJSON finds the extent of the JSON value which starts at the current token.
// The value is cut out of the token stream into a single token and the rest of input is lexed again.
func (t *Tokenizer) matchJSON() bool {
	tok := t.peek(0)
	if tok == nil {
		return false
	}
	if tok.Type == jsonType {
		return true
	}
	if !t.isValue(0, tokPunct, "[") && !t.isValue(0, tokPunct, "{") {
		return false
	}
	start := tok.Pos.Offset
	dec := json.NewDecoder(strings.NewReader(t.input[start:]))
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return false
	}
	end := start + int(dec.InputOffset())
	rest, err := lexAt(uriLexer, t.input, end)
	if err != nil {
		return false
	}
	value := lexer.Token{Type: jsonType, Value: t.input[start:end], Pos: tok.Pos}
	t.tokens = append(append(t.tokens[:t.pos:t.pos], value), rest...)
	return true
}

func (t *Tokenizer) peek(i int) *lexer.Token {
	if j := t.pos + i; j < len(t.tokens) {
		return &t.tokens[j]
	}
	return nil
}

func (t *Tokenizer) value(i int) string {
	if tok := t.peek(i); tok != nil {
		return tok.Value
	}
	return ""
}

func (t *Tokenizer) isType(i int, name string) bool {
	tok := t.peek(i)
	return tok != nil && tok.Type == uriSymbols[name]
}

func (t *Tokenizer) isValue(i int, name, value string) bool {
	return t.isType(i, name) && t.value(i) == value
}

func (g geoKind) matches(literal string) bool {
	lower := strings.ToLower(literal)
	if strings.HasPrefix(lower, "geography") != g.geography {
		return false
	}
	body := sridPattern.ReplaceAllString(quoted(lower), "")
	return strings.HasPrefix(body, g.shape+"(") && strings.HasSuffix(body, ")")
}

// quoted returns the text between the first and the last quote of prefix'text'
func quoted(literal string) string {
	i := strings.IndexByte(literal, '\'')
	if i < 0 || len(literal) < i+2 {
		return ""
	}
	return literal[i+1 : len(literal)-1]
}

func validDate(s string) bool {
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}

func validTimeOfDay(s string) bool {
	parts := strings.SplitN(s, ":", 3)
	if !inRange(parts[0], 23) || !inRange(parts[1], 59) {
		return false
	}
	if len(parts) == 3 {
		sec, _, _ := strings.Cut(parts[2], ".")
		return inRange(sec, 59)
	}
	return true
}

func validDateTimeOffset(s string) bool {
	if !validDate(s[:10]) {
		return false
	}
	clock := s[11:]
	if strings.HasSuffix(clock, "Z") || strings.HasSuffix(clock, "z") {
		return validTimeOfDay(clock[:len(clock)-1])
	}
	if len(clock) < 6 {
		return false
	}
	zone := clock[len(clock)-5:]
	return validTimeOfDay(clock[:len(clock)-6]) && inRange(zone[:2], 23) && inRange(zone[3:], 59)
}

func inRange(digits string, maxValue int) bool {
	v, err := strconv.Atoi(digits)
	return err == nil && v >= 0 && v <= maxValue
}

func validBinary(s string) bool {
	_, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
	return err == nil
}

package parser

import "testing"

func TestScanTokensAndPositions(t *testing.T) {
	tokens, err := NewLexer("var x = 41\nprint(x)").Scan()
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	want := []struct {
		tt   TokenType
		line int
	}{
		{VAR, 1}, {IDENT, 1}, {ASSIGN, 1}, {INT, 1},
		{IDENT, 2}, {LPAREN, 2}, {IDENT, 2}, {RPAREN, 2},
		{EOF, 2},
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for idx, w := range want {
		if tokens[idx].Type != w.tt || tokens[idx].Line != w.line {
			t.Fatalf("token %d = {%v line %d}, want {%v line %d}",
				idx, tokens[idx].Type, tokens[idx].Line, w.tt, w.line)
		}
	}
	if tokens[3].Literal != 41 {
		t.Fatalf("unexpected int literal: %#v", tokens[3].Literal)
	}
}

func TestScanStringEscapes(t *testing.T) {
	tokens, err := NewLexer(`"a\n\"b\""`).Scan()
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if tokens[0].Type != STRING || tokens[0].Literal != "a\n\"b\"" {
		t.Fatalf("unexpected string token: %#v", tokens[0])
	}
}

func TestScanSkipsLineComments(t *testing.T) {
	tokens, err := NewLexer("// leading\nvar x = 1 // trailing\n").Scan()
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if len(tokens) != 5 || tokens[0].Type != VAR || tokens[0].Line != 2 {
		t.Fatalf("unexpected tokens: %#v", tokens)
	}
}

func TestScanTwoCharOperators(t *testing.T) {
	tokens, err := NewLexer("== != <= >= < >").Scan()
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	want := []TokenType{EQ, NEQ, LE, GE, LT, GT, EOF}
	for idx, tt := range want {
		if tokens[idx].Type != tt {
			t.Fatalf("token %d = %v, want %v", idx, tokens[idx].Type, tt)
		}
	}
}

func TestScanUnterminatedStringIsIncomplete(t *testing.T) {
	_, err := NewLexer(`"abc`).Scan()
	if err == nil || !IsIncomplete(err) {
		t.Fatalf("expected incomplete error, got %v", err)
	}
}

func TestScanRejectsUnknownCharacter(t *testing.T) {
	_, err := NewLexer("var x = @").Scan()
	if err == nil || IsIncomplete(err) {
		t.Fatalf("expected hard lex error, got %v", err)
	}
}

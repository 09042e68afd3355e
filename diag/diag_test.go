package diag

import "testing"

func TestWholeLine(t *testing.T) {
	r := WholeLine(9)
	if r.Start.Line != 9 || r.Start.Column != 0 {
		t.Errorf("Start = %+v, want line 9 column 0", r.Start)
	}
	if r.End.Line != 9 || r.End.Column != EndOfLine {
		t.Errorf("End = %+v, want line 9 column %d", r.End, EndOfLine)
	}
}

func TestFromColumn(t *testing.T) {
	r := FromColumn(3, 14)
	if r.Start.Line != 3 || r.Start.Column != 14 {
		t.Errorf("Start = %+v, want line 3 column 14", r.Start)
	}
	if r.End.Line != 3 || r.End.Column != EndOfLine {
		t.Errorf("End = %+v, want line 3 column %d", r.End, EndOfLine)
	}
}

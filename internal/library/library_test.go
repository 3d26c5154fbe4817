package library_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bw-notes/bw/internal/library"
)

func Test_AppendNote_Starts_At_Cursor_And_Advances_It(t *testing.T) {
	t.Parallel()

	lib := library.New()
	idx := lib.AppendBook("Dune", "Herbert")

	for _, end := range []uint16{30, 60, 61, 500} {
		book, err := lib.BookAt(idx)
		require.NoError(t, err)

		before := book.Progress.Cursor()

		note, err := lib.AppendNote(idx, end, "text")
		require.NoError(t, err)

		assert.Equal(t, before, note.Start, "start must equal prior cursor")
		assert.Equal(t, end, note.End)
		assert.Equal(t, end+1, book.Progress.Cursor(), "cursor must be end+1")
		assert.Equal(t, library.InProgress, book.Progress.State())
	}
}

func Test_Dune_Scenario(t *testing.T) {
	t.Parallel()

	lib := library.New()

	idx := lib.AppendBook("Dune", "Herbert")
	require.Equal(t, 0, idx)

	book, err := lib.BookAt(0)
	require.NoError(t, err)
	assert.Equal(t, library.NotStarted, book.Progress.State())
	assert.Empty(t, book.Notes)

	_, err = lib.AppendNote(0, 30, "intro")
	require.NoError(t, err)
	assert.Equal(t, uint16(31), book.Progress.Cursor())

	_, err = lib.AppendNote(0, 60, "middle")
	require.NoError(t, err)
	assert.Equal(t, uint16(61), book.Progress.Cursor())

	final, err := lib.Finish(0, "great book")
	require.NoError(t, err)

	want := []library.Note{
		library.NewRangeNote(0, 30, "intro"),
		library.NewRangeNote(31, 60, "middle"),
		library.NewFinalThoughts(61, "great book"),
	}
	if diff := cmp.Diff(want, book.Notes); diff != "" {
		t.Fatalf("notes mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, library.NewFinalThoughts(61, "great book"), final)
	assert.True(t, book.IsFinished())
	assert.Equal(t, library.PageFinished, book.Progress.Cursor())

	got, err := book.NoteForPage(45)
	require.NoError(t, err)
	assert.Equal(t, "middle", got.Text)

	got, err = book.NoteForPage(10)
	require.NoError(t, err)
	assert.Equal(t, "intro", got.Text)

	_, err = book.NoteForPage(9999)
	require.ErrorIs(t, err, library.ErrNoNoteForPage)

	_, err = book.NoteForPage(library.FinalThoughtsEnd)
	require.ErrorIs(t, err, library.ErrNoNoteForPage)
}

func Test_NoteForPage_Returns_First_Match_On_Overlap(t *testing.T) {
	t.Parallel()

	book := library.Book{Notes: []library.Note{
		library.NewRangeNote(0, 20, "first"),
		library.NewRangeNote(10, 30, "second"),
	}}

	got, err := book.NoteForPage(15)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Text)

	got, err = book.NoteForPage(25)
	require.NoError(t, err)
	assert.Equal(t, "second", got.Text)

	got, err = book.NoteForPage(20)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Text, "range bounds are inclusive")
}

func Test_Walk_Visits_Expected_Positions(t *testing.T) {
	t.Parallel()

	var book library.Book
	for i := range 7 {
		book.Notes = append(book.Notes, library.NewRangeNote(uint16(i*10), uint16(i*10+9), string(rune('a'+i))))
	}

	testCases := []struct {
		name  string
		start int
		step  int
		want  string
	}{
		{name: "All", start: 0, step: 1, want: "abcdefg"},
		{name: "Even", start: 0, step: 2, want: "aceg"},
		{name: "Odd", start: 1, step: 2, want: "bdf"},
		{name: "LargeStep", start: 2, step: 10, want: "c"},
		{name: "StartAtLast", start: 6, step: 1, want: "g"},
		{name: "StartPastEnd", start: 7, step: 1, want: ""},
		{name: "StartFarPastEnd", start: 500, step: 3, want: ""},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			notes, err := book.Walk(testCase.start, testCase.step)
			require.NoError(t, err)

			var got string
			for _, n := range notes {
				got += n.Text
			}

			assert.Equal(t, testCase.want, got)
		})
	}
}

func Test_Walk_Rejects_Zero_Step_And_Negative_Start(t *testing.T) {
	t.Parallel()

	book := library.Book{Notes: []library.Note{library.NewRangeNote(0, 1, "x")}}

	_, err := book.Walk(0, 0)
	require.ErrorIs(t, err, library.ErrInvalidStep)

	_, err = book.Walk(-1, 1)
	require.ErrorIs(t, err, library.ErrInvalidNoteIndex)
}

func Test_RemoveBookAt_Shifts_Later_Books(t *testing.T) {
	t.Parallel()

	lib := library.New()
	lib.AppendBook("A", "a")
	lib.AppendBook("B", "b")
	lib.AppendBook("C", "c")

	removed, err := lib.RemoveBookAt(1)
	require.NoError(t, err)
	assert.Equal(t, "B", removed.Name)
	require.Equal(t, 2, lib.Len())

	book, err := lib.BookAt(1)
	require.NoError(t, err)
	assert.Equal(t, "C", book.Name)
}

func Test_Index_Out_Of_Range(t *testing.T) {
	t.Parallel()

	lib := library.New()
	lib.AppendBook("A", "a")

	_, err := lib.BookAt(1)
	require.ErrorIs(t, err, library.ErrBookIndexOutOfRange)

	_, err = lib.BookAt(-1)
	require.ErrorIs(t, err, library.ErrBookIndexOutOfRange)

	_, err = lib.RemoveBookAt(5)
	require.ErrorIs(t, err, library.ErrBookIndexOutOfRange)

	_, err = lib.AppendNote(3, 10, "x")
	require.ErrorIs(t, err, library.ErrBookIndexOutOfRange)

	_, err = lib.Finish(3, "x")
	require.ErrorIs(t, err, library.ErrBookIndexOutOfRange)

	assert.Equal(t, 1, lib.Len(), "failed calls must not change the library")
}

func Test_AppendNote_Rejects_Invalid_Ranges(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		prepare func(lib *library.Library)
		end     uint16
		wantErr error
	}{
		{
			name:    "EndBeforeCursor",
			prepare: func(lib *library.Library) { _, _ = lib.AppendNote(0, 40, "x") },
			end:     20,
			wantErr: library.ErrInvalidPageRange,
		},
		{
			name:    "ReservedFinalThoughtsEnd",
			end:     library.FinalThoughtsEnd,
			wantErr: library.ErrInvalidPageRange,
		},
		{
			name:    "ReservedFinishedEnd",
			end:     library.PageFinished,
			wantErr: library.ErrInvalidPageRange,
		},
		{
			name:    "FinishedBook",
			prepare: func(lib *library.Library) { _, _ = lib.Finish(0, "done") },
			end:     10,
			wantErr: library.ErrBookFinished,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			lib := library.New()
			lib.AppendBook("A", "a")

			if testCase.prepare != nil {
				testCase.prepare(lib)
			}

			book, err := lib.BookAt(0)
			require.NoError(t, err)

			before := len(book.Notes)

			_, err = lib.AppendNote(0, testCase.end, "y")
			require.ErrorIs(t, err, testCase.wantErr)
			assert.Len(t, book.Notes, before)
		})
	}
}

func Test_Single_Page_Note_Is_Allowed(t *testing.T) {
	t.Parallel()

	lib := library.New()
	lib.AppendBook("A", "a")

	_, err := lib.AppendNote(0, 0, "cover")
	require.NoError(t, err)

	note, err := lib.AppendNote(0, 1, "page one")
	require.NoError(t, err)
	assert.Equal(t, library.NewRangeNote(1, 1, "page one"), note)
}

func Test_Finish_Twice_Fails(t *testing.T) {
	t.Parallel()

	lib := library.New()
	lib.AppendBook("A", "a")

	_, err := lib.Finish(0, "first")
	require.NoError(t, err)

	_, err = lib.Finish(0, "second")
	require.ErrorIs(t, err, library.ErrBookFinished)
}

func Test_Legacy_Final_Thoughts_Counts_As_Finished(t *testing.T) {
	t.Parallel()

	var lib library.Library

	doc := `[{"name":"Old","author":"X","page":61,"notes":[{"start":0,"end":60,"note":"a"},{"start":61,"end":65534,"note":"b"}]}]`
	require.NoError(t, json.Unmarshal([]byte(doc), &lib))

	book, err := lib.BookAt(0)
	require.NoError(t, err)

	assert.Equal(t, library.InProgress, book.Progress.State())
	assert.True(t, book.IsFinished())
	assert.True(t, book.Notes[1].IsFinalThoughts())
	assert.Equal(t, uint16(61), book.Notes[1].Start)
}

func Test_JSON_Round_Trip_Is_Lossless(t *testing.T) {
	t.Parallel()

	lib := library.New()
	lib.AppendBook("Dune", "Herbert")
	lib.AppendBook("Empty", "")
	lib.AppendBook("Ünïcode \"quoted\"", "Ørsted")
	_, _ = lib.AppendNote(0, 30, "intro\nwith newline")
	_, _ = lib.Finish(0, "great book")
	_, _ = lib.AppendNote(2, 65533, "long")

	data, err := json.Marshal(lib)
	require.NoError(t, err)

	var got library.Library
	require.NoError(t, json.Unmarshal(data, &got))

	if diff := cmp.Diff(lib, &got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func Test_JSON_Encoding_Uses_Stored_Sentinels(t *testing.T) {
	t.Parallel()

	lib := library.New()
	lib.AppendBook("New", "a")
	lib.AppendBook("Done", "b")
	_, _ = lib.Finish(1, "end")

	data, err := json.Marshal(lib)
	require.NoError(t, err)

	want := `[{"name":"New","author":"a","page":0,"notes":[]},` +
		`{"name":"Done","author":"b","page":65535,"notes":[{"start":0,"end":65534,"note":"end"}]}]`
	assert.JSONEq(t, want, string(data))
	assert.Equal(t, want, string(data), "key order must follow the document shape")
}

func Test_ProgressAt_Decodes_Sentinels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, library.NotStarted, library.ProgressAt(0).State())
	assert.Equal(t, library.Finished, library.ProgressAt(65535).State())

	p := library.ProgressAt(42)
	assert.Equal(t, library.InProgress, p.State())
	assert.Equal(t, uint16(42), p.Page())

	for _, cursor := range []uint16{0, 1, 42, 65534, 65535} {
		assert.Equal(t, cursor, library.ProgressAt(cursor).Cursor())
	}
}

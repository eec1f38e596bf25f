package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := Select("kind", "key", "created_at").
		From("favorites").
		Where(Eq("kind", "match"), In("key", "1", "2")).
		OrderBy("created_at DESC", "key").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT kind, key, created_at FROM favorites WHERE kind = $1 AND key IN ($2, $3) ORDER BY created_at DESC, key LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "match" || args[2] != "2" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_EmptyInMatchesNothing(t *testing.T) {
	t.Parallel()

	query, args, err := Select("1").From("favorites").Where(In("key")).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT 1 FROM favorites WHERE 1=0" || len(args) != 0 {
		t.Fatalf("unexpected query %q args %+v", query, args)
	}
}

func TestInsertBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := InsertInto("favorites").
		Columns("kind", "key").
		Values("player", "1905").
		Suffix("ON CONFLICT (kind, key) DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO favorites (kind, key) VALUES ($1, $2) ON CONFLICT (kind, key) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "player" || args[1] != "1905" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_ValueCountMismatch(t *testing.T) {
	t.Parallel()

	if _, _, err := InsertInto("favorites").Columns("kind", "key").Values("match").ToSQL(); err == nil {
		t.Fatalf("expected value count error")
	}
}

func TestDeleteBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := DeleteFrom("favorites").Where(Eq("kind", "match"), Eq("key", "42")).ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM favorites WHERE kind = $1 AND key = $2" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom("favorites").ToSQL(); err == nil {
		t.Fatalf("expected unconditional delete to be rejected")
	}
}

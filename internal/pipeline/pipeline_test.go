package pipeline

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/pokefetch/pokefetch/internal/database"
	"github.com/pokefetch/pokefetch/internal/fetch"
	"github.com/pokefetch/pokefetch/internal/scrape"
)

// failingStep always fails, recording whether it was reached.
type failingStep struct {
	ran bool
}

func (s *failingStep) Do(context.Context, *Run) error {
	s.ran = true
	return errors.New("boom")
}

func (s *failingStep) Name() string { return "failing" }

// recordingStep records whether it was reached.
type recordingStep struct {
	ran bool
}

func (s *recordingStep) Do(context.Context, *Run) error {
	s.ran = true
	return nil
}

func (s *recordingStep) Name() string { return "recording" }

// TestPipelineExecute tests step sequencing and abort behavior.
func TestPipelineExecute(t *testing.T) {
	t.Parallel()

	t.Run("stops at first failing step", func(t *testing.T) {
		t.Parallel()

		failing := &failingStep{}
		after := &recordingStep{}
		p := New([]Step{failing, after})

		err := p.Execute(context.Background(), NewRun())
		if err == nil {
			t.Fatal("Execute() succeeded, want error")
		}
		if after.ran {
			t.Error("step after failure ran")
		}
		if got := err.Error(); got != "failing: boom" {
			t.Errorf("error = %q, want step name prefix", got)
		}
	})

	t.Run("honors cancellation between steps", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		step := &recordingStep{}
		err := New([]Step{step}).Execute(ctx, NewRun())
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Execute() = %v, want context.Canceled", err)
		}
		if step.ran {
			t.Error("step ran despite cancelled context")
		}
	})
}

// TestFullRun exercises the whole pipeline against a local Pokédex and a
// SQLite destination: two entities, one attribute table between them.
func TestFullRun(t *testing.T) {
	t.Parallel()

	srv := pokedexServer(t)
	spec := database.ConnectionSpec{
		Driver:    database.DriverSQLite,
		Service:   filepath.Join(t.TempDir(), "pokefetch.db"),
		TableName: "master_pokemon",
	}

	fetcher := fetch.New()
	p := New([]Step{
		NewListingStep(fetcher, srv.URL+"/pokedex/national"),
		NewEntitiesStep(fetcher, srv.URL),
		NewPersistStep(database.NewSink(), spec),
	})

	run := NewRun()
	if err := p.Execute(context.Background(), run); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	db, err := sql.Open("sqlite", spec.Service)
	if err != nil {
		t.Fatalf("failed to open destination: %v", err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT "Pokemon Name", "Type" FROM "master_pokemon"`)
	if err != nil {
		t.Fatalf("failed to query destination: %v", err)
	}
	defer rows.Close()

	var got [][2]string
	for rows.Next() {
		var name, typ string
		if err := rows.Scan(&name, &typ); err != nil {
			t.Fatalf("failed to scan: %v", err)
		}
		got = append(got, [2]string{name, typ})
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("row iteration failed: %v", err)
	}

	want := [][2]string{
		{"Bulbasaur", "Grass / Poison"},
		{"Ivysaur", ""},
	}
	if len(got) != len(want) {
		t.Fatalf("destination has %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %v, want %v", i, got[i], want[i])
		}
	}
}

// TestFullRunAbortsWithoutPersisting verifies that a mid-run extraction
// failure leaves the destination untouched even when earlier entities
// succeeded.
func TestFullRunAbortsWithoutPersisting(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/pokedex/national", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html><body>
			<div class="infocard"><span class="infocard-lg-img"><a href="/pokedex/1"></a></span></div>
			<div class="infocard"><span class="infocard-lg-img"><a href="/pokedex/2"></a></span></div>
		</body></html>`)
	})
	mux.HandleFunc("/pokedex/1", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html><body><main id="main"><h1>Bulbasaur</h1></main></body></html>`)
	})
	mux.HandleFunc("/pokedex/2", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html><body><main id="main"><p>broken page</p></main></body></html>`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	dbPath := filepath.Join(t.TempDir(), "pokefetch.db")
	spec := database.ConnectionSpec{
		Driver:    database.DriverSQLite,
		Service:   dbPath,
		TableName: "master_pokemon",
	}

	fetcher := fetch.New()
	p := New([]Step{
		NewListingStep(fetcher, srv.URL+"/pokedex/national"),
		NewEntitiesStep(fetcher, srv.URL),
		NewPersistStep(database.NewSink(), spec),
	})

	err := p.Execute(context.Background(), NewRun())

	var missing *scrape.MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("Execute() = %v, want *scrape.MissingFieldError", err)
	}

	// The persist step never ran, so the destination table must not exist.
	db, err := sql.Open("sqlite", spec.Service)
	if err != nil {
		t.Fatalf("failed to open destination path: %v", err)
	}
	defer db.Close()

	var count int
	err = db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='master_pokemon'`).Scan(&count)
	if err != nil {
		t.Fatalf("failed to inspect schema: %v", err)
	}
	if count != 0 {
		t.Error("destination table exists after aborted run")
	}
}

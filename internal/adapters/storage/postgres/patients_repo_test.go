package postgres

import (
	"strings"
	"testing"

	"registro-veterinaria/internal/domain/patients"
)

func TestBuildPatientsQuery_SoloParametrosPosicionales(t *testing.T) {
	cases := []struct {
		name     string
		filter   patients.Filter
		wantSQL  []string
		wantArgs []any
	}{
		{
			name:     "sin filtros",
			filter:   patients.Filter{},
			wantSQL:  []string{"WHERE 1=1", "ORDER BY created_at ASC"},
			wantArgs: []any{},
		},
		{
			name:     "solo id",
			filter:   patients.Filter{ID: "PET001"},
			wantSQL:  []string{"AND id = $1"},
			wantArgs: []any{"PET001"},
		},
		{
			name:     "solo nombre",
			filter:   patients.Filter{NameContains: "luk"},
			wantSQL:  []string{"AND nombre ILIKE $1"},
			wantArgs: []any{"%luk%"},
		},
		{
			name:     "id y nombre",
			filter:   patients.Filter{ID: "PET001", NameContains: "luk"},
			wantSQL:  []string{"AND id = $1", "AND nombre ILIKE $2"},
			wantArgs: []any{"PET001", "%luk%"},
		},
		{
			name:     "nombre con comodines de LIKE",
			filter:   patients.Filter{NameContains: "100%"},
			wantSQL:  []string{"AND nombre ILIKE $1"},
			wantArgs: []any{`%100\%%`},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			query, args := buildPatientsQuery(tc.filter)

			for _, frag := range tc.wantSQL {
				if !strings.Contains(query, frag) {
					t.Fatalf("query missing %q:\n%s", frag, query)
				}
			}
			if len(args) != len(tc.wantArgs) {
				t.Fatalf("expected %d args, got %d", len(tc.wantArgs), len(args))
			}
			for i := range args {
				if args[i] != tc.wantArgs[i] {
					t.Fatalf("arg %d: expected %v, got %v", i, tc.wantArgs[i], args[i])
				}
			}
		})
	}
}

func TestEscapeLike_SubstringLiteral(t *testing.T) {
	// %, _ y \ del filtro son texto literal, no comodines: "100%" no debe
	// matchear "100x" en este backend cuando los demás lo rechazan.
	cases := []struct {
		in   string
		want string
	}{
		{"luk", "luk"},
		{"100%", `100\%`},
		{"a_b", `a\_b`},
		{`c:\tmp`, `c:\\tmp`},
		{`%_\`, `\%\_\\`},
	}

	for _, tc := range cases {
		if got := escapeLike(tc.in); got != tc.want {
			t.Fatalf("escapeLike(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestBuildPatientsQuery_NoInterpolaValores(t *testing.T) {
	// El valor del filtro jamás aparece en el texto de la query, solo en args.
	hostile := `luk'; DROP TABLE pacientes; --`

	query, args := buildPatientsQuery(patients.Filter{NameContains: hostile})

	if strings.Contains(query, hostile) {
		t.Fatalf("filter value leaked into query text:\n%s", query)
	}
	if len(args) != 1 || args[0] != "%"+hostile+"%" {
		t.Fatalf("expected value bound as parameter, got %v", args)
	}
}

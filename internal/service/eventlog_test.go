package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"heat_capacity_game/internal/models"
	"heat_capacity_game/internal/repository"
)

// fakeEventRepo is a minimal stub that satisfies the repository.EventRepo interface.
type fakeEventRepo struct {
	gotQuery repository.EventQuery

	events []models.GameEvent
	err    error

	calls int
}

func (f *fakeEventRepo) List(ctx context.Context, q repository.EventQuery) ([]models.GameEvent, error) {
	f.calls++
	f.gotQuery = q
	return f.events, f.err
}

func (f *fakeEventRepo) Append(ctx context.Context, e models.GameEvent) error {
	return nil
}

func mustTimeIn(loc *time.Location, y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, loc)
}

func Test_normalizeToUTC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   time.Time
		want func(time.Time) bool
	}{
		{
			name: "zero time remains zero",
			in:   time.Time{},
			want: func(out time.Time) bool { return out.IsZero() },
		},
		{
			name: "non-UTC converted to UTC preserving instant",
			in:   mustTimeIn(time.FixedZone("UTC+3", 3*3600), 2025, time.August, 1, 12, 34, 56),
			want: func(out time.Time) bool {
				exp := time.Date(2025, time.August, 1, 9, 34, 56, 0, time.UTC)
				return out.Location() == time.UTC && out.Equal(exp)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := normalizeToUTC(tc.in)
			if !tc.want(got) {
				t.Fatalf("unexpected normalizeToUTC result: %v (loc=%v)", got, got.Location())
			}
		})
	}
}

func Test_normalizeEventType(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in  string
		exp string
	}{
		{in: "", exp: ""},
		{in: "  RESET ", exp: "RESET"},
		{in: "pause", exp: "PAUSE"},
		{in: " select_vessel ", exp: "SELECT_VESSEL"},
	}

	for _, c := range cases {
		if got := normalizeEventType(c.in); got != c.exp {
			t.Fatalf("normalizeEventType(%q) = %q; want %q", c.in, got, c.exp)
		}
	}
}

func Test_normalizeAndValidateFilter(t *testing.T) {
	t.Parallel()

	fromLocal := mustTimeIn(time.FixedZone("UTC+2", 2*3600), 2025, time.September, 10, 10, 0, 0)
	toUTC := time.Date(2025, time.September, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		in      LogFilter
		want    repository.EventQuery
		wantErr error
	}{
		{
			name: "all zero/empty ok",
			in:   LogFilter{},
			want: repository.EventQuery{},
		},
		{
			name: "from after to -> error",
			in: LogFilter{
				From: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
				To:   time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC),
			},
			wantErr: errInvalidTimeRange,
		},
		{
			name:    "negative limit -> error",
			in:      LogFilter{Limit: -1},
			wantErr: errInvalidLimit,
		},
		{
			name: "huge limit is capped",
			in:   LogFilter{Limit: 50_000},
			want: repository.EventQuery{Limit: MaxLogLimit},
		},
		{
			name: "normalize tz and type",
			in:   LogFilter{From: fromLocal, To: toUTC, Type: " complete ", Limit: 5},
			want: repository.EventQuery{
				From:  time.Date(2025, time.September, 10, 8, 0, 0, 0, time.UTC),
				To:    toUTC,
				Type:  models.EventComplete,
				Limit: 5,
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := normalizeAndValidateFilter(tc.in)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected err %v; got %v", tc.wantErr, err)
			}
			if err != nil {
				return
			}
			if !got.From.Equal(tc.want.From) || !got.To.Equal(tc.want.To) {
				t.Fatalf("range: got [%v, %v]; want [%v, %v]", got.From, got.To, tc.want.From, tc.want.To)
			}
			if got.Type != tc.want.Type || got.Limit != tc.want.Limit {
				t.Fatalf("got type=%q limit=%d; want type=%q limit=%d", got.Type, got.Limit, tc.want.Type, tc.want.Limit)
			}
		})
	}
}

func TestEventLogService_List_DelegatesNormalizedParams(t *testing.T) {
	t.Parallel()

	frepo := &fakeEventRepo{events: []models.GameEvent{{EventID: "1"}}}
	svc := NewEventLogService(frepo)

	fromLocal := mustTimeIn(time.FixedZone("UTC+5", 5*3600), 2025, time.October, 1, 10, 0, 0)
	toLocal := mustTimeIn(time.FixedZone("UTC-2", -2*3600), 2025, time.October, 1, 12, 30, 0)

	out, err := svc.List(context.Background(), LogFilter{From: fromLocal, To: toLocal, Type: "  reset "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].EventID != "1" {
		t.Fatalf("unexpected events: %+v", out)
	}
	if frepo.calls != 1 {
		t.Fatalf("repo List should be called once, got %d", frepo.calls)
	}

	wantFrom := time.Date(2025, time.October, 1, 5, 0, 0, 0, time.UTC)
	wantTo := time.Date(2025, time.October, 1, 14, 30, 0, 0, time.UTC)
	if !frepo.gotQuery.From.Equal(wantFrom) || !frepo.gotQuery.To.Equal(wantTo) {
		t.Fatalf("repo got [%v, %v]; want [%v, %v]", frepo.gotQuery.From, frepo.gotQuery.To, wantFrom, wantTo)
	}
	if frepo.gotQuery.Type != models.EventReset {
		t.Fatalf("repo gotType=%q; want %q", frepo.gotQuery.Type, models.EventReset)
	}
}

func TestEventLogService_List_ValidationError(t *testing.T) {
	t.Parallel()

	frepo := &fakeEventRepo{}
	svc := NewEventLogService(frepo)

	_, err := svc.List(context.Background(), LogFilter{
		From: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, errInvalidTimeRange) {
		t.Fatalf("expected errInvalidTimeRange; got %v", err)
	}
	if frepo.calls != 0 {
		t.Fatalf("repo should not be called on validation error, calls=%d", frepo.calls)
	}
}

func TestEventLogService_List_RepoErrorPropagation(t *testing.T) {
	t.Parallel()

	frepo := &fakeEventRepo{err: errors.New("db down")}
	svc := NewEventLogService(frepo)

	_, err := svc.List(context.Background(), LogFilter{})
	if !errors.Is(err, frepo.err) {
		t.Fatalf("expected repo error to propagate; got %v", err)
	}
}

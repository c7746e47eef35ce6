package runner

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/saeidalz13/battleship-sim/db/sqlc"
	"github.com/saeidalz13/battleship-sim/internal/config"
	cerr "github.com/saeidalz13/battleship-sim/internal/error"
	"github.com/saeidalz13/battleship-sim/internal/render"
	"github.com/saeidalz13/battleship-sim/internal/scenario"
	"github.com/sqlc-dev/pqtype"
)

var testIpNet = net.IPNet{IP: net.IPv4(192, 168, 1, 20).To4(), Mask: net.CIDRMask(32, 32)}

const overlappingScenario = `
ships:
  - {name: first, row: 3, col: 3, orientation: horizontal}
  - {name: second, row: 2, col: 4, orientation: vertical}
skills:
  - {kind: cross, row: 5, col: 5}
`

type testRunner struct {
	runner *Runner
	mock   sqlmock.Sqlmock
	out    *bytes.Buffer
	logs   *bytes.Buffer
}

func newTestRunner(t *testing.T) testRunner {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { conn.Close() })

	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	r, err := NewRunner(
		WithStage(config.StageDev),
		WithRenderer(render.NewTextRenderer(out)),
		WithAnalytics(sqlc.NewAnalyticsManager(sqlc.New(conn))),
		WithHostIpNet(testIpNet),
		WithLogger(log.New(logs, "", 0)),
	)
	if err != nil {
		t.Fatal(err)
	}

	return testRunner{runner: r, mock: mock, out: out, logs: logs}
}

func TestRunDefaultScenario(t *testing.T) {
	tr := newTestRunner(t)

	sc, err := scenario.Default()
	if err != nil {
		t.Fatal(err)
	}

	tr.mock.ExpectExec(`INSERT INTO sim_host_analytics`).
		WithArgs(pqtype.Inet{IPNet: testIpNet, Valid: true}, int64(4), int64(0), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	report, err := tr.runner.Run(context.Background(), sc)
	if err != nil {
		t.Fatal(err)
	}

	if report.ShipsPlaced() != 4 {
		t.Fatalf("expected ships placed: %d\tgot: %d", 4, report.ShipsPlaced())
	}
	if !strings.HasPrefix(tr.out.String(), "Board (0 = water, 3 = ship, 5 = skill area)") {
		t.Fatalf("board was not rendered:\n%s", tr.out.String())
	}
	if !strings.Contains(tr.logs.String(), report.SimulationUuid) {
		t.Fatalf("expected simulation uuid in logs:\n%s", tr.logs.String())
	}
	if err := tr.mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations were not met: %v", err)
	}
}

func TestRunStopsOnRejectedShip(t *testing.T) {
	tr := newTestRunner(t)

	sc, err := scenario.Parse([]byte(overlappingScenario), "overlap.yaml")
	if err != nil {
		t.Fatal(err)
	}

	tr.mock.ExpectExec(`INSERT INTO sim_host_analytics`).
		WithArgs(pqtype.Inet{IPNet: testIpNet, Valid: true}, int64(1), int64(1), int64(0)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	report, err := tr.runner.Run(context.Background(), sc)
	if !errors.Is(err, cerr.ErrRejected) {
		t.Fatalf("expected rejection\tgot: %v", err)
	}
	if !report.Rejected() {
		t.Fatal("expected report to be marked rejected")
	}
	if tr.out.Len() != 0 {
		t.Fatalf("board must not be rendered after a rejection:\n%s", tr.out.String())
	}
	if !strings.Contains(tr.logs.String(), `could not place ship "second" at (2,4)`) {
		t.Fatalf("expected diagnostic in logs:\n%s", tr.logs.String())
	}
	if err := tr.mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations were not met: %v", err)
	}
}

func TestRunAnalyticsFailureIsNotFatal(t *testing.T) {
	tr := newTestRunner(t)

	sc, err := scenario.Default()
	if err != nil {
		t.Fatal(err)
	}

	tr.mock.ExpectExec(`INSERT INTO sim_host_analytics`).
		WillReturnError(errors.New("connection refused"))

	if _, err := tr.runner.Run(context.Background(), sc); err != nil {
		t.Fatalf("analytics failure leaked into the run: %v", err)
	}
	if !strings.Contains(tr.logs.String(), "connection refused") {
		t.Fatalf("expected analytics error in logs:\n%s", tr.logs.String())
	}
}

func TestRunWithoutAnalytics(t *testing.T) {
	var out bytes.Buffer
	r, err := NewRunner(WithRenderer(render.NewGlyphRenderer(&out, false)), WithLogger(log.New(&bytes.Buffer{}, "", 0)))
	if err != nil {
		t.Fatal(err)
	}

	sc, err := scenario.Default()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Run(context.Background(), sc); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), string(render.GlyphShip)) {
		t.Fatalf("expected ship glyphs:\n%s", out.String())
	}
}

func TestWithStage(t *testing.T) {
	tests := []struct {
		stage   string
		wantErr bool
	}{
		{stage: config.StageDev},
		{stage: config.StageProd},
		{stage: "qa", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.stage, func(t *testing.T) {
			_, err := NewRunner(WithStage(test.stage))
			if (err != nil) != test.wantErr {
				t.Fatalf("expected error: %t\tgot: %v", test.wantErr, err)
			}
		})
	}
}

func TestHostIpNet(t *testing.T) {
	ipnet := HostIpNet()
	if ipnet.IP.To4() == nil {
		t.Fatalf("expected an IPv4 address\tgot: %s", ipnet.IP)
	}
	if ones, bits := ipnet.Mask.Size(); ones != 32 || bits != 32 {
		t.Fatalf("expected /32 mask\tgot: /%d of %d", ones, bits)
	}
}

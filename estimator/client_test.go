package estimator

import (
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/rmera/gokin/estimator/estimatortest"
	"github.com/rmera/gokin/rxn"
)

func testClient(Te *testing.T, addr string, mod func(*Config)) *Client {
	Te.Helper()
	cfg := DefaultConfig()
	cfg.Addr = addr
	cfg.DialTimeout = time.Second
	cfg.IdleTimeout = 5 * time.Second
	if mod != nil {
		mod(&cfg)
	}
	return NewClient(cfg, WithLogger(zaptest.NewLogger(Te)))
}

func fakeEstimator(Te *testing.T, resp string) *estimatortest.Server {
	Te.Helper()
	srv, err := estimatortest.NewServer(estimatortest.Static(resp))
	require.NoError(Te, err)
	Te.Cleanup(func() { srv.Close() })
	return srv
}

//closedAddr returns an address where nobody listens.
func closedAddr(Te *testing.T) string {
	Te.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(Te, err)
	addr := ln.Addr().String()
	require.NoError(Te, ln.Close())
	return addr
}

func counterValue(Te *testing.T, c prometheus.Counter) float64 {
	Te.Helper()
	var m dto.Metric
	require.NoError(Te, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestClientMethane(Te *testing.T) {
	srv := fakeEstimator(Te, methaneResponse)
	C := testClient(Te, srv.Addr(), nil)
	methane := mustSpecies(Te, "methane", methaneAdj)
	out := C.Reactions([]*rxn.Species{methane}, nil)
	require.Len(Te, out, 1)
	r := out[0]
	assert.Equal(Te, "CH4 --> CH3 + H", r.String())
	assert.Equal(Te, rxn.EstimatorResult{Estimator: "RMG-Java"}, r.Source)
	k := r.Kinetics.(*rxn.Arrhenius)
	assert.InDelta(Te, 1e14, k.A.Value, 1)
	assert.Equal(Te, "s^-1", k.A.Units)
	assert.Equal(Te, 100.0, k.Ea.Value)
	assert.Equal(Te, "kcal/mol", k.Ea.Units)
	assert.Equal(Te, "comment", r.Comment())

	req, err := BuildRequest([]*rxn.Species{methane})
	require.NoError(Te, err)
	reqs := srv.Requests()
	require.Len(Te, reqs, 1)
	assert.Equal(Te, string(req), string(reqs[0]))

	assert.Equal(Te, 1.0, counterValue(Te, C.Metrics().Queries.WithLabelValues(OutcomeOK)))
	assert.Equal(Te, 1, testutil.CollectAndCount(C.Metrics().Exchange))
}

func TestClientProducts(Te *testing.T) {
	srv := fakeEstimator(Te, methaneResponse)
	C := testClient(Te, srv.Addr(), nil)
	methane := mustSpecies(Te, "", methaneAdj)
	methyl := mustSpecies(Te, "", methylAdj)
	h := mustSpecies(Te, "", hAdj)

	out, err := C.Query([]*rxn.Species{methane}, []*rxn.Species{h, methyl})
	require.NoError(Te, err)
	require.Len(Te, out, 1)

	//the reverse query finds the same line
	out, err = C.Query([]*rxn.Species{methyl, h}, []*rxn.Species{methane})
	require.NoError(Te, err)
	require.Len(Te, out, 1)
	assert.Equal(Te, "CH4 --> CH3 + H", out[0].String())
}

func TestClientUnresolvedProducts(Te *testing.T) {
	srv := fakeEstimator(Te, methaneResponse)
	C := testClient(Te, srv.Addr(), nil)
	ethane := mustSpecies(Te, "", "1 C u0 p0 c0 {2,S}\n2 C u0 p0 c0 {1,S}")
	methane := mustSpecies(Te, "", methaneAdj)
	_, err := C.Query([]*rxn.Species{methane}, []*rxn.Species{ethane})
	assert.ErrorIs(Te, err, ErrUnresolvedProducts)
	out := C.Reactions([]*rxn.Species{methane}, []*rxn.Species{ethane})
	assert.NotNil(Te, out)
	assert.Empty(Te, out)
	assert.Equal(Te, 2.0, counterValue(Te, C.Metrics().Queries.WithLabelValues(OutcomeUnresolvedProducts)))
}

func TestClientUnresolvedReactantKeepsMolecularity(Te *testing.T) {
	resp := "CH4\n1 C 0\n\nCH3\n1 C 1\n\nH\n1 H 1\n\nC2H6\n1 C 0 {2,S}\n2 C 0 {1,S}\n\n\n" +
		"Reactions\n" +
		"CH4 --> CH3 + H\t1.0e14\t0\t100.0\n" +
		"CH3 + CH3 --> C2H6\t1.0e13\t0\t0.0\n"
	srv := fakeEstimator(Te, resp)
	C := testClient(Te, srv.Addr(), nil)
	propane := mustSpecies(Te, "", "1 C u0 p0 c0 {2,S}\n2 C u0 p0 c0 {1,S} {3,S}\n3 C u0 p0 c0 {2,S}")
	methane := mustSpecies(Te, "", methaneAdj)
	methyl := mustSpecies(Te, "", methylAdj)

	//a bimolecular query is not answered with the decomposition of its known reactant
	out, err := C.Query([]*rxn.Species{methane, propane}, nil)
	assert.ErrorIs(Te, err, ErrNoReactions)
	assert.Empty(Te, out)
	//nor with the self reaction of its known reactant
	out, err = C.Query([]*rxn.Species{methyl, propane}, nil)
	assert.ErrorIs(Te, err, ErrNoReactions)
	assert.Empty(Te, out)

	out, err = C.Query([]*rxn.Species{methyl, methyl}, nil)
	require.NoError(Te, err)
	require.Len(Te, out, 1)
	assert.Equal(Te, "CH3 + CH3 --> C2H6", out[0].String())
}

func TestClientNoReactions(Te *testing.T) {
	srv := fakeEstimator(Te, methaneResponse)
	C := testClient(Te, srv.Addr(), nil)
	_, err := C.Query([]*rxn.Species{mustSpecies(Te, "", methylAdj)}, nil)
	assert.ErrorIs(Te, err, ErrNoReactions)
	assert.Equal(Te, OutcomeNoReactions, Outcome(err))
}

func TestClientOffline(Te *testing.T) {
	C := testClient(Te, closedAddr(Te), nil)
	methane := mustSpecies(Te, "", methaneAdj)
	out := C.Reactions([]*rxn.Species{methane}, nil)
	assert.NotNil(Te, out)
	assert.Empty(Te, out)
	_, err := C.Query([]*rxn.Species{methane}, nil)
	assert.ErrorIs(Te, err, ErrOffline)
	assert.Equal(Te, 2.0, counterValue(Te, C.Metrics().Queries.WithLabelValues(OutcomeOffline)))
}

func TestClientMalformedResponse(Te *testing.T) {
	raw := "this is not\nwhat we expected\n"
	srv := fakeEstimator(Te, raw)
	dir := Te.TempDir()
	C := testClient(Te, srv.Addr(), func(c *Config) { c.DumpDir = dir })
	methane := mustSpecies(Te, "", methaneAdj)
	out := C.Reactions([]*rxn.Species{methane}, nil)
	assert.NotNil(Te, out)
	assert.Empty(Te, out)
	_, err := C.Query([]*rxn.Species{methane}, nil)
	assert.ErrorIs(Te, err, ErrFraming)

	dumps, err := filepath.Glob(filepath.Join(dir, "*"+dumpSuffix))
	require.NoError(Te, err)
	require.Len(Te, dumps, 2)
	back, err := ReadDump(dumps[0])
	require.NoError(Te, err)
	assert.Equal(Te, raw, string(back))
	assert.Equal(Te, 2.0, counterValue(Te, C.Metrics().Queries.WithLabelValues(OutcomeFraming)))
}

func TestClientStalled(Te *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(Te, err)
	var mu sync.Mutex
	var conns []net.Conn
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			//reads nothing, answers a little and never closes
			conn.Write([]byte("CH4\n"))
			mu.Lock()
			conns = append(conns, conn)
			mu.Unlock()
		}
	}()
	defer func() {
		ln.Close()
		mu.Lock()
		for _, c := range conns {
			c.Close()
		}
		mu.Unlock()
	}()
	C := testClient(Te, ln.Addr().String(), func(c *Config) { c.IdleTimeout = 100 * time.Millisecond })
	start := time.Now()
	_, err = C.Query([]*rxn.Species{mustSpecies(Te, "", methaneAdj)}, nil)
	assert.ErrorIs(Te, err, ErrStalled)
	assert.Less(Te, time.Since(start), 5*time.Second)
	assert.Equal(Te, OutcomeOffline, Outcome(err))
}

func TestClientBreaker(Te *testing.T) {
	C := testClient(Te, closedAddr(Te), func(c *Config) {
		c.Breaker = BreakerConfig{
			Enabled:          true,
			MaxRequests:      1,
			Timeout:          time.Minute,
			MinRequests:      2,
			FailureThreshold: 0.5,
		}
	})
	methane := []*rxn.Species{mustSpecies(Te, "", methaneAdj)}
	for i := 0; i < 2; i++ {
		_, err := C.Query(methane, nil)
		require.ErrorIs(Te, err, ErrOffline)
	}
	_, err := C.Query(methane, nil)
	assert.ErrorIs(Te, err, ErrBreakerOpen)
	assert.Equal(Te, 1.0, counterValue(Te, C.Metrics().Queries.WithLabelValues(OutcomeBreakerOpen)))
}

func TestClientBreakerIgnoresBadResponses(Te *testing.T) {
	srv := fakeEstimator(Te, "junk")
	C := testClient(Te, srv.Addr(), func(c *Config) {
		c.Breaker.MinRequests = 1
		c.Breaker.FailureThreshold = 0.1
	})
	methane := []*rxn.Species{mustSpecies(Te, "", methaneAdj)}
	for i := 0; i < 3; i++ {
		_, err := C.Query(methane, nil)
		require.ErrorIs(Te, err, ErrFraming)
	}
}

func TestClientConcurrent(Te *testing.T) {
	srv := fakeEstimator(Te, methaneResponse)
	reg := prometheus.NewRegistry()
	C := NewClient(Config{Addr: srv.Addr(), Name: "est", DialTimeout: time.Second, IdleTimeout: time.Second}, WithRegisterer(reg))
	methane := []*rxn.Species{mustSpecies(Te, "", methaneAdj)}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Len(Te, C.Reactions(methane, nil), 1)
		}()
	}
	wg.Wait()
	assert.Len(Te, srv.Requests(), 8)
	n, err := testutil.GatherAndCount(reg, "gokin_estimator_queries_total")
	require.NoError(Te, err)
	assert.Equal(Te, 7, n)
	assert.Equal(Te, 8.0, testutil.ToFloat64(C.Metrics().Queries.WithLabelValues(OutcomeOK)))
}

func TestDumpRoundTrip(Te *testing.T) {
	dir := filepath.Join(Te.TempDir(), "dumps")
	raw := []byte("CH4\n1 C 0\n\nsomething odd")
	path, err := dumpResponse(dir, "abc", raw)
	require.NoError(Te, err)
	assert.Equal(Te, filepath.Join(dir, "abc.response.zst"), path)
	st, err := os.Stat(path)
	require.NoError(Te, err)
	assert.NotZero(Te, st.Size())
	back, err := ReadDump(path)
	require.NoError(Te, err)
	assert.Equal(Te, raw, back)
}

package observability

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/grafana/pyroscope-go"
	"github.com/riskibarqy/matchday-standings/internal/config"
	"github.com/riskibarqy/matchday-standings/internal/platform/logging"
)

// CPU, heap and goroutine profiles only.
var pyroscopeProfileTypes = []pyroscope.ProfileType{
	pyroscope.ProfileCPU,
	pyroscope.ProfileAllocObjects,
	pyroscope.ProfileAllocSpace,
	pyroscope.ProfileInuseObjects,
	pyroscope.ProfileInuseSpace,
	pyroscope.ProfileGoroutines,
}

// Profiling owns the optional pprof endpoint and the Pyroscope agent.
type Profiling struct {
	logger   *logging.Logger
	server   *http.Server
	addr     string
	profiler *pyroscope.Profiler
}

// StartProfiling binds the pprof listener synchronously and starts the
// Pyroscope agent when enabled.
func StartProfiling(cfg config.Config, logger *logging.Logger) (*Profiling, error) {
	if logger == nil {
		logger = logging.Default()
	}
	p := &Profiling{logger: logger.Named("profiling")}

	if cfg.PprofEnabled {
		if err := p.startPprof(cfg.PprofAddr); err != nil {
			return nil, err
		}
	}

	if cfg.PyroscopeEnabled {
		profiler, err := pyroscope.Start(pyroscope.Config{
			ApplicationName:   cfg.PyroscopeAppName,
			ServerAddress:     cfg.PyroscopeServerAddress,
			AuthToken:         cfg.PyroscopeAuthToken,
			BasicAuthUser:     cfg.PyroscopeBasicAuthUser,
			BasicAuthPassword: cfg.PyroscopeBasicAuthPassword,
			UploadRate:        cfg.PyroscopeUploadRate,
			Tags: map[string]string{
				"env":     cfg.AppEnv,
				"service": cfg.ServiceName,
				"version": cfg.ServiceVersion,
				"storage": cfg.StorageDriver,
			},
			ProfileTypes: pyroscopeProfileTypes,
		})
		if err != nil {
			_ = p.stopPprof(time.Second)
			return nil, fmt.Errorf("start pyroscope: %w", err)
		}
		p.profiler = profiler
		p.logger.Info("pyroscope enabled",
			"server_address", cfg.PyroscopeServerAddress,
			"application", cfg.PyroscopeAppName,
		)
	}

	if p.server == nil && p.profiler == nil {
		p.logger.Debug("profiling disabled")
	}

	return p, nil
}

// Addr is the bound pprof address, empty when pprof is off.
func (p *Profiling) Addr() string {
	if p == nil {
		return ""
	}
	return p.addr
}

// Stop shuts the pprof server down and flushes the Pyroscope agent.
func (p *Profiling) Stop(timeout time.Duration) error {
	if p == nil {
		return nil
	}

	var errs []error
	if err := p.stopPprof(timeout); err != nil {
		errs = append(errs, fmt.Errorf("stop pprof: %w", err))
	}
	if p.profiler != nil {
		if err := p.profiler.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop pyroscope: %w", err))
		}
		p.profiler = nil
	}

	return errors.Join(errs...)
}

func (p *Profiling) startPprof(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen pprof on %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	p.server = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	p.addr = listener.Addr().String()

	go func(srv *http.Server) {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			p.logger.Error("pprof server failed", "error", err)
		}
	}(p.server)
	p.logger.Info("pprof server listening", "addr", p.addr)

	return nil
}

func (p *Profiling) stopPprof(timeout time.Duration) error {
	if p.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	err := p.server.Shutdown(ctx)
	p.server = nil
	p.addr = ""
	return err
}

package api

import (
	"net"
	"net/http"
	"strconv"

	"github.com/saeidalz13/battlesquares/db/sqlc"
	cerr "github.com/saeidalz13/battlesquares/internal/error"
	mc "github.com/saeidalz13/battlesquares/models/connection"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

var defaultPort = 8000

type Server struct {
	port           int
	stage          string
	analytics      *sqlc.AnalyticsManager
	SessionManager mc.SessionManager
}

type Option func(*Server) error

func NewServer(optFuncs ...Option) *Server {
	server := Server{
		port:  defaultPort,
		stage: StageDev,
	}
	for _, opt := range optFuncs {
		if err := opt(&server); err != nil {
			panic(err)
		}
	}

	if server.SessionManager == nil {
		server.SessionManager = mc.NewDecideSessionManager()
	}
	if server.analytics == nil {
		server.analytics = sqlc.NewAnalyticsManager(nil)
	}

	return &server
}

func WithPort(port int) Option {
	return func(s *Server) error {
		s.port = port
		return nil
	}
}

func WithStage(stage string) Option {
	return func(s *Server) error {
		if stage != StageProd && stage != StageDev {
			return cerr.ErrInvalidStage(stage)
		}
		s.stage = stage
		return nil
	}
}

// A nil querier leaves analytics disabled.
func WithQuerier(q sqlc.Querier) Option {
	return func(s *Server) error {
		if q != nil {
			s.analytics = sqlc.NewDbManager(q).Analytics
		}
		return nil
	}
}

func WithSessionManager(sm mc.SessionManager) Option {
	return func(s *Server) error {
		s.SessionManager = sm
		return nil
	}
}

func (s *Server) Addr() string {
	return "0.0.0.0:" + strconv.Itoa(s.port)
}

func (s *Server) Stage() string {
	return s.stage
}

func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/game/corner", s.HandleCorner)
	mux.HandleFunc("POST /api/game/check", s.HandleCheck)
	mux.Handle("GET /api/game/ws", NewRequestProcessor(s.SessionManager, s.analytics))
	return mux
}

// Returns nil if the remote address cannot be parsed.
func clientIp(r *http.Request) net.IP {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return nil
	}
	return net.ParseIP(host)
}

package sqlc

import (
	"context"
	"log"
	"net"

	"github.com/sqlc-dev/pqtype"

	cerr "github.com/saeidalz13/battlesquares/internal/error"
)

const (
	EndpointCorner uint8 = iota
	EndpointCheck
	EndpointDecide
)

// AnalyticsManager counts endpoint usage per client address. A manager
// built on a nil Querier records nothing.
type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

func (a *AnalyticsManager) Enabled() bool {
	return a != nil && a.queries != nil
}

// Record is best effort: failures are logged and never reach the caller.
func (a *AnalyticsManager) Record(ctx context.Context, endpoint uint8, clientIp net.IP) {
	if !a.Enabled() || clientIp == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()

	inet := ClientInet(clientIp)

	var err error
	switch endpoint {
	case EndpointCorner:
		err = a.queries.AnalyticsIncrementCornerRequestsCount(ctx, inet)
	case EndpointCheck:
		err = a.queries.AnalyticsIncrementCheckRequestsCount(ctx, inet)
	case EndpointDecide:
		err = a.queries.AnalyticsIncrementDecisionsCount(ctx, inet)
	default:
		log.Printf("unknown analytics endpoint: %d", endpoint)
		return
	}

	if err != nil {
		log.Printf("failed to record analytics\tendpoint: %d\tclient: %s\terr: %v", endpoint, clientIp, err)
	}
}

func (a *AnalyticsManager) GetCornerRequestsCount(ctx context.Context, clientIp net.IP) (int64, error) {
	if !a.Enabled() {
		return 0, cerr.ErrAnalyticsOff
	}
	return a.queries.AnalyticsGetCornerRequestsCount(ctx, ClientInet(clientIp))
}

func (a *AnalyticsManager) GetDecisionsCount(ctx context.Context, clientIp net.IP) (int64, error) {
	if !a.Enabled() {
		return 0, cerr.ErrAnalyticsOff
	}
	return a.queries.AnalyticsGetDecisionsCount(ctx, ClientInet(clientIp))
}

// Single host network for ip, /32 for v4 and /128 for v6.
func ClientInet(ip net.IP) pqtype.Inet {
	if v4 := ip.To4(); v4 != nil {
		return pqtype.Inet{IPNet: net.IPNet{IP: v4, Mask: net.CIDRMask(32, 32)}, Valid: true}
	}
	return pqtype.Inet{IPNet: net.IPNet{IP: ip, Mask: net.CIDRMask(128, 128)}, Valid: true}
}

package lldptlv

import (
	"errors"
	"net/http"

	"github.com/javadmohebbi/lldptlv/tlv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the collectors exported by this package.
var Registry = prometheus.NewRegistry()

var (
	tlvsDecoded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lldptlv",
		Name:      "tlvs_decoded_total",
		Help:      "Number of TLVs decoded, by TLV type."},
		[]string{"type"})
	tlvDecodeErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lldptlv",
		Name:      "tlv_decode_errors_total",
		Help:      "Number of TLVs that failed to decode, by reason."},
		[]string{"reason"})
	framesDecoded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "lldptlv",
		Name:      "frames_decoded_total",
		Help:      "Number of LLDP frames turned into discovery information."})
)

func init() {
	Registry.MustRegister(tlvsDecoded, tlvDecodeErrors, framesDecoded)
}

// errorReasons maps decode failures to metric label values. The first match
// wins, so the more specific errors come first.
var errorReasons = []struct {
	err    error
	reason string
}{
	{tlv.ErrUnknownType, "unknown_type"},
	{tlv.ErrTypeMismatch, "type_mismatch"},
	{tlv.ErrLengthOverflow, "length_overflow"},
	{tlv.ErrFixedLength, "fixed_length"},
	{tlv.ErrMalformedText, "malformed_text"},
	{tlv.ErrCapabilityViolation, "capability_violation"},
	{tlv.ErrOIDOverflow, "oid_overflow"},
	{tlv.ErrAddressFamily, "address_family"},
	{tlv.ErrAddressLength, "address_length"},
	{tlv.ErrInterfaceSubtype, "interface_subtype"},
	{tlv.ErrLengthMismatch, "length_mismatch"},
	{tlv.ErrIDSubtype, "id_subtype"},
	{tlv.ErrTruncated, "truncated"},
}

func errorReason(err error) string {
	for _, r := range errorReasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return "other"
}

func countRecord(r tlv.Record) {
	tlvsDecoded.WithLabelValues(r.Type().String()).Inc()
}

func countError(err error) {
	tlvDecodeErrors.WithLabelValues(errorReason(err)).Inc()
}

// MetricsHandler serves the collectors in Registry.
func MetricsHandler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// StartMetricsServer serves MetricsHandler on addr under path. It blocks
// until the server fails.
func StartMetricsServer(addr, path string) error {
	mux := http.NewServeMux()
	mux.Handle(path, MetricsHandler())
	DefaultLog("serving metrics on %s%s", addr, path)

	//nolint:gosec // TODO: add read and header timeouts
	return http.ListenAndServe(addr, mux)
}

package qlog

import (
	"runtime/debug"
	"time"

	"github.com/udpftp/udpftp/logging"

	"github.com/francoispqt/gojay"
)

// Setting of this only works when udpftp is used as a library.
// When building a binary from this repository, the version can be set using the following go build flag:
// -ldflags="-X github.com/udpftp/udpftp/qlog.udpftpVersion=foobar"
var udpftpVersion = "(devel)"

func init() {
	if udpftpVersion != "(devel)" { // variable set by ldflags
		return
	}
	info, ok := debug.ReadBuildInfo()
	if !ok { // no build info available. This happens when udpftp is not used as a library.
		return
	}
	for _, d := range info.Deps {
		if d.Path == "github.com/udpftp/udpftp" {
			udpftpVersion = d.Version
			if d.Replace != nil {
				if len(d.Replace.Version) > 0 {
					udpftpVersion = d.Version
				} else {
					udpftpVersion += " (replaced)"
				}
			}
			break
		}
	}
}

type topLevel struct {
	trace trace
}

func (topLevel) IsNil() bool { return false }
func (l topLevel) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("qlog_format", "JSON-SEQ")
	enc.StringKey("qlog_version", "0.3")
	enc.StringKey("title", "udpftp qlog")
	enc.ObjectKey("configuration", configuration{Version: udpftpVersion})
	enc.ObjectKey("trace", l.trace)
}

type configuration struct {
	Version string
}

func (c configuration) IsNil() bool { return false }
func (c configuration) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("code_version", c.Version)
}

type vantagePoint struct {
	Name string
	Type logging.Perspective
}

func (p vantagePoint) IsNil() bool { return false }
func (p vantagePoint) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKeyOmitEmpty("name", p.Name)
	enc.StringKey("type", p.Type.String())
}

type commonFields struct {
	GroupID       logging.ConnectionID
	ReferenceTime time.Time
}

func (f commonFields) IsNil() bool { return false }
func (f commonFields) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("group_id", f.GroupID.String())
	enc.StringKey("protocol_type", "UDPFTP")
	enc.Float64Key("reference_time", float64(f.ReferenceTime.UnixNano())/1e6)
	enc.StringKey("time_format", "relative")
}

type trace struct {
	VantagePoint vantagePoint
	CommonFields commonFields
}

func (t trace) IsNil() bool { return false }
func (t trace) MarshalJSONObject(enc *gojay.Encoder) {
	enc.ObjectKey("vantage_point", t.VantagePoint)
	enc.ObjectKey("common_fields", t.CommonFields)
}

//go:build gomock || generate

package udpftp

//go:generate sh -c "go run go.uber.org/mock/mockgen -typed -build_flags=\"-tags=gomock\" -package udpftp -self_package github.com/udpftp/udpftp -destination mock_raw_conn_test.go github.com/udpftp/udpftp RawConn"
type RawConn = rawConn

package config

import (
	"fmt"
	"os"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosettings/validate"
	"github.com/qdm12/gotree"
)

type Server struct {
	Enabled          *bool
	ListeningAddress string
}

func (s *Server) read(r *reader.Reader) (err error) {
	s.Enabled, err = r.BoolPtr("IPGET_SERVER_ENABLED")
	if err != nil {
		return err
	}

	s.ListeningAddress = r.String("IPGET_LISTENING_ADDRESS")
	return nil
}

func (s *Server) setDefaults() {
	s.Enabled = gosettings.DefaultPointer(s.Enabled, true)
	s.ListeningAddress = gosettings.DefaultComparable(s.ListeningAddress, ":8000")
}

func (s Server) Validate() (err error) {
	err = validate.ListeningAddress(s.ListeningAddress, os.Getuid())
	if err != nil {
		return fmt.Errorf("listening address: %w", err)
	}
	return nil
}

func (s Server) String() string {
	return s.toLinesNode().String()
}

func (s Server) toLinesNode() *gotree.Node {
	if !*s.Enabled {
		return gotree.New("Server: disabled")
	}
	node := gotree.New("Server")
	node.Appendf("Listening address: %s", s.ListeningAddress)
	return node
}

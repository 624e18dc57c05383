package config

import (
	"fmt"

	"github.com/containrrr/shoutrrr"
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Shoutrrr struct {
	Addresses    []string
	DefaultTitle string
}

func (s *Shoutrrr) read(r *reader.Reader) {
	s.Addresses = r.CSV("SHOUTRRR_ADDRESSES", reader.ForceLowercase(false))
	s.DefaultTitle = r.String("SHOUTRRR_DEFAULT_TITLE",
		reader.ForceLowercase(false))
}

func (s *Shoutrrr) setDefaults() {
	s.Addresses = gosettings.DefaultSlice(s.Addresses, []string{})
	s.DefaultTitle = gosettings.DefaultComparable(s.DefaultTitle, "Ipget")
}

func (s Shoutrrr) Validate() (err error) {
	_, err = shoutrrr.CreateSender(s.Addresses...)
	if err != nil {
		return fmt.Errorf("shoutrrr addresses: %w", err)
	}
	return nil
}

func (s Shoutrrr) String() string {
	return s.toLinesNode().String()
}

func (s Shoutrrr) toLinesNode() *gotree.Node {
	if len(s.Addresses) == 0 {
		return nil // no address means shoutrrr is disabled
	}

	node := gotree.New("Shoutrrr")
	node.Appendf("Default title: %s", s.DefaultTitle)

	childNode := node.Appendf("Addresses")
	for _, address := range s.Addresses {
		childNode.Appendf(address)
	}

	return node
}

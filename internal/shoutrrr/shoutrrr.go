// Package shoutrrr sends notifications about public IP changes
// to the notification services configured by the user.
package shoutrrr

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/containrrr/shoutrrr"
	"github.com/containrrr/shoutrrr/pkg/router"
)

type Erroer interface {
	Error(s string)
}

type Settings struct {
	Addresses    []string
	DefaultTitle string
	Logger       Erroer
}

type Client struct {
	serviceRouter *router.ServiceRouter
	serviceNames  []string
	logger        Erroer
}

func New(settings Settings) (client *Client, err error) {
	for i, address := range settings.Addresses {
		settings.Addresses[i] = addDefaultTitle(address, settings.DefaultTitle)
	}

	serviceRouter, err := shoutrrr.CreateSender(settings.Addresses...)
	if err != nil {
		return nil, fmt.Errorf("creating service router: %w", err)
	}

	serviceNames := make([]string, len(settings.Addresses))
	for i, address := range settings.Addresses {
		serviceNames[i] = strings.Split(address, ":")[0]
	}

	return &Client{
		serviceRouter: serviceRouter,
		serviceNames:  serviceNames,
		logger:        settings.Logger,
	}, nil
}

func (c *Client) Notify(message string) {
	errs := c.serviceRouter.Send(message, nil)
	for i, err := range errs {
		if err != nil {
			c.logger.Error(c.serviceNames[i] + ": " + err.Error())
		}
	}
}

func addDefaultTitle(address, defaultTitle string) (updatedAddress string) {
	u, err := url.Parse(address)
	if err != nil {
		// address should already be validated
		panic(fmt.Sprintf("parsing address as url: %s", err))
	}

	urlValues := u.Query()
	if urlValues.Has("title") {
		return address
	}

	urlValues.Set("title", defaultTitle)
	u.RawQuery = urlValues.Encode()
	return u.String()
}

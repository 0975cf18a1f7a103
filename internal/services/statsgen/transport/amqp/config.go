// Package amqp consumes EventMetaData deliveries from RabbitMQ and hands them
// to a Handler.
package amqp

import (
	"errors"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/louisbranch/netobs-statsgen/internal/platform/timeouts"
)

// DefaultExchange is the fanout exchange MassTransit publishes
// EventMetaDataMessage to.
const DefaultExchange = "EFR.NetworkObservability.RabbitMQ:EventMetaDataMessage"

const (
	defaultPrefetch    = 1
	defaultConcurrency = 1
	defaultDialTimeout = timeouts.BrokerDial
	defaultConsumerTag = "netobs-statsgen"
)

// Config controls the broker connection and delivery fan-out.
type Config struct {
	URL         string
	Queue       string
	Exchange    string
	Prefetch    int
	Concurrency int
	DialTimeout time.Duration
	ConsumerTag string
}

func (c Config) normalized() Config {
	c.URL = strings.TrimSpace(c.URL)
	c.Queue = strings.TrimSpace(c.Queue)
	c.Exchange = strings.TrimSpace(c.Exchange)
	if c.Prefetch <= 0 {
		c.Prefetch = defaultPrefetch
	}
	if c.Concurrency <= 0 {
		c.Concurrency = defaultConcurrency
	}
	if c.DialTimeout <= 0 {
		c.DialTimeout = defaultDialTimeout
	}
	if strings.TrimSpace(c.ConsumerTag) == "" {
		c.ConsumerTag = defaultConsumerTag
	}
	return c
}

func (c Config) validate() error {
	if c.URL == "" {
		return errors.New("broker url is required")
	}
	if c.Queue == "" {
		return errors.New("queue is required")
	}
	return nil
}

// URL assembles an amqp:// URL from discrete broker settings. An empty vhost
// selects "/".
func URL(host string, port int, username, password, vhost string) string {
	host = strings.TrimSpace(host)
	if host == "" {
		return ""
	}
	if port <= 0 {
		port = 5672
	}
	if vhost == "" {
		vhost = "/"
	}
	u := url.URL{
		Scheme:  "amqp",
		Host:    net.JoinHostPort(host, strconv.Itoa(port)),
		Path:    "/" + vhost,
		RawPath: "/" + url.PathEscape(vhost),
	}
	if username != "" {
		u.User = url.UserPassword(username, password)
	}
	return u.String()
}

// Package dnsclient implements dnsresolver.Resolver with direct queries to
// recursive nameservers using miekg/dns.
package dnsclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"orgdomain/pkg/dnsresolver"
	"orgdomain/pkg/logger"
	"orgdomain/pkg/serrors"

	"github.com/miekg/dns"
	"go.uber.org/zap"
)

const (
	defaultResolvConf = "/etc/resolv.conf"
	defaultTimeout    = 5 * time.Second
)

// Options configures the client.
type Options struct {
	// Nameservers are queried in order until one gives a definitive answer.
	// Entries without a port default to 53. When empty the nameservers of
	// /etc/resolv.conf are used.
	Nameservers []string
	// Timeout bounds each exchange with a single nameserver.
	Timeout time.Duration
	// TCPFallback retries over TCP when a UDP answer is truncated.
	TCPFallback bool
}

// Client is safe for concurrent use.
type Client struct {
	nameservers []string
	udp         *dns.Client
	tcp         *dns.Client
	tcpFallback bool
}

var _ dnsresolver.Resolver = (*Client)(nil)

// New builds a client from options.
func New(options Options) (*Client, error) {
	nameservers := options.Nameservers
	if len(nameservers) == 0 {
		conf, err := dns.ClientConfigFromFile(defaultResolvConf)
		if err != nil {
			return nil, fmt.Errorf("could not read %s: %w", defaultResolvConf, err)
		}
		for _, s := range conf.Servers {
			nameservers = append(nameservers, net.JoinHostPort(s, conf.Port))
		}
	}
	if len(nameservers) == 0 {
		return nil, errors.New("no nameservers configured")
	}

	normalized := make([]string, 0, len(nameservers))
	for _, ns := range nameservers {
		if _, _, err := net.SplitHostPort(ns); err != nil {
			ns = net.JoinHostPort(ns, "53")
		}
		normalized = append(normalized, ns)
	}

	timeout := options.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		nameservers: normalized,
		udp:         &dns.Client{Net: "udp", Timeout: timeout},
		tcp:         &dns.Client{Net: "tcp", Timeout: timeout},
		tcpFallback: options.TCPFallback,
	}, nil
}

// Resolve queries the TXT records of domainName and compares each one, with
// its character strings joined and surrounding whitespace trimmed, to txt.
func (c *Client) Resolve(ctx context.Context, domainName, txt string) (bool, error) {
	records, err := c.lookupTXT(ctx, domainName)
	if err != nil {
		return false, err
	}

	want := strings.TrimSpace(txt)
	for _, r := range records {
		if strings.TrimSpace(r) == want {
			return true, nil
		}
	}

	logger.Debug(ctx, "txt token not found",
		zap.String("domainName", domainName),
		zap.Int("records", len(records)))

	return false, nil
}

func (c *Client) lookupTXT(ctx context.Context, domainName string) ([]string, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(domainName), dns.TypeTXT)
	msg.RecursionDesired = true

	var lastErr error
	for _, ns := range c.nameservers {
		if err := ctx.Err(); err != nil {
			return nil, serrors.Wrap(serrors.ErrUnavailable, err, "resolving TXT of %s", domainName)
		}

		resp, err := c.exchange(ctx, msg, ns)
		if err != nil {
			lastErr = err
			logger.Warn(ctx, "nameserver exchange failed",
				zap.String("nameserver", ns),
				zap.String("domainName", domainName),
				zap.Error(err))

			continue
		}

		switch resp.Rcode {
		case dns.RcodeSuccess:
			return txtRecords(resp), nil
		case dns.RcodeNameError:
			return nil, nil
		default:
			lastErr = fmt.Errorf("nameserver %s answered %s", ns, dns.RcodeToString[resp.Rcode])
		}
	}

	return nil, serrors.Wrap(serrors.ErrUnavailable, lastErr, "resolving TXT of %s", domainName)
}

func (c *Client) exchange(ctx context.Context, msg *dns.Msg, nameserver string) (*dns.Msg, error) {
	resp, _, err := c.udp.ExchangeContext(ctx, msg, nameserver)
	if err != nil {
		return nil, fmt.Errorf("udp exchange with %s: %w", nameserver, err)
	}
	if resp.Truncated && c.tcpFallback {
		resp, _, err = c.tcp.ExchangeContext(ctx, msg, nameserver)
		if err != nil {
			return nil, fmt.Errorf("tcp exchange with %s: %w", nameserver, err)
		}
	}

	return resp, nil
}

func txtRecords(resp *dns.Msg) []string {
	var out []string
	for _, rr := range resp.Answer {
		if t, ok := rr.(*dns.TXT); ok {
			out = append(out, strings.Join(t.Txt, ""))
		}
	}

	return out
}

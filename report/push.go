package report

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/golang/snappy"
	"go.buf.build/protocolbuffers/go/prometheus/prometheus"

	"playparse/batch"
)

const (
	DefaultTimeout = 30 * time.Second
	writePath      = "/api/v1/write"
)

// Pusher sends batch counters to a Prometheus remote write endpoint.
type Pusher struct {
	url    *url.URL
	client http.Client
}

func NewPusher(prometheusUrl string, timeout time.Duration) (*Pusher, error) {
	parsedUrl, err := url.Parse(prometheusUrl)
	if err != nil {
		return nil, fmt.Errorf("invalid prometheus url: %w", err)
	}
	if parsedUrl.Scheme == "" || parsedUrl.Host == "" {
		return nil, fmt.Errorf("invalid prometheus url %q", prometheusUrl)
	}
	parsedUrl.Path = path.Join(parsedUrl.Path, writePath)

	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Pusher{
		url:    parsedUrl,
		client: http.Client{Timeout: timeout},
	}, nil
}

// withName copies the labels of series, renaming the metric.
func withName(series *prometheus.TimeSeries, name string) []*prometheus.Label {
	labels := make([]*prometheus.Label, 0, len(series.Labels))
	for _, l := range series.Labels {
		if l.Name == nameLabel {
			labels = append(labels, &prometheus.Label{Name: nameLabel, Value: name})
			continue
		}
		labels = append(labels, &prometheus.Label{Name: l.Name, Value: l.Value})
	}
	return labels
}

func metricName(series *prometheus.TimeSeries) string {
	for _, l := range series.Labels {
		if l.Name == nameLabel {
			return l.Value
		}
	}
	return ""
}

// WriteRequest builds <name>_total, <name>_success and <name>_errors gauges
// from stats, all sampled at ts.
func WriteRequest(series *prometheus.TimeSeries, stats batch.Stats, ts time.Time) *prometheus.WriteRequest {
	name := metricName(series)
	values := []struct {
		suffix string
		value  int
		help   string
	}{
		{"_total", stats.Total, "plays parsed"},
		{"_success", stats.Success, "plays parsed without error"},
		{"_errors", stats.Errors, "plays that failed to parse"},
	}

	wr := &prometheus.WriteRequest{}
	for _, v := range values {
		wr.Timeseries = append(wr.Timeseries, &prometheus.TimeSeries{
			Labels: withName(series, name+v.suffix),
			Samples: []*prometheus.Sample{{
				Value:     float64(v.value),
				Timestamp: ts.UnixMilli(),
			}},
		})
		wr.Metadata = append(wr.Metadata, &prometheus.MetricMetadata{
			Type:             prometheus.MetricMetadata_GAUGE,
			MetricFamilyName: name + v.suffix,
			Help:             v.help,
		})
	}
	return wr
}

func (p *Pusher) Send(ctx context.Context, wr *prometheus.WriteRequest) error {
	data, err := proto.Marshal(wr)
	if err != nil {
		return err
	}
	encoded := snappy.Encode(nil, data)

	req, err := http.NewRequestWithContext(ctx, "POST", p.url.String(), bytes.NewReader(encoded))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-protobuf")
	req.Header.Set("Content-Encoding", "snappy")
	req.Header.Set("X-Prometheus-Remote-Write-Version", "0.1.0")

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if resp.StatusCode == http.StatusBadRequest {
			// possibly duplicate data? ignore it.
			log.Println("invalid data detected, ignoring it")
			return nil
		}
		return fmt.Errorf("unexpected remote write status code: %v", resp.StatusCode)
	}
	return nil
}

// Push reports stats under the given series selector.
func (p *Pusher) Push(ctx context.Context, series string, stats batch.Stats) error {
	ts, err := ParseSeries(series)
	if err != nil {
		return fmt.Errorf("parsing series %q: %w", series, err)
	}
	return p.Send(ctx, WriteRequest(ts, stats, time.Now()))
}

// Push is a one-shot Pusher with the default timeout.
func Push(ctx context.Context, prometheusUrl, series string, stats batch.Stats) error {
	p, err := NewPusher(prometheusUrl, DefaultTimeout)
	if err != nil {
		return err
	}
	return p.Push(ctx, series, stats)
}

package location

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// ReaderProvider adapts a line-oriented reader into a location feed.
// Each line is a "lat,lng" pair; malformed lines are skipped. The feed
// closes when the reader is exhausted.
type ReaderProvider struct {
	updates chan Coordinate
	logger  *zap.Logger
}

// NewReaderProvider starts reading coordinates from r immediately.
func NewReaderProvider(r io.Reader, logger *zap.Logger) *ReaderProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &ReaderProvider{
		updates: make(chan Coordinate),
		logger:  logger,
	}
	go p.read(r)
	return p
}

// Updates returns the coordinate feed.
func (p *ReaderProvider) Updates() <-chan Coordinate {
	return p.updates
}

func (p *ReaderProvider) read(r io.Reader) {
	defer close(p.updates)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		coord, ok := parseCoordinateLine(line)
		if !ok {
			p.logger.Warn("skipping malformed location line", zap.String("line", line))
			continue
		}
		p.updates <- coord
	}
}

func parseCoordinateLine(line string) (Coordinate, bool) {
	parts := strings.SplitN(line, ",", 2)
	if len(parts) != 2 {
		return Coordinate{}, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinate{}, false
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinate{}, false
	}
	return Coordinate{Latitude: lat, Longitude: lng}, true
}

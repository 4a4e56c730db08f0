package tracker

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/and161185/fitness-tracker/model"
)

// DefaultPackets returns the sample readings used when no packets file is given.
func DefaultPackets() []model.Packet {
	return []model.Packet{
		{Type: model.Swim, Data: []float64{720, 1, 80, 25, 40}},
		{Type: model.Run, Data: []float64{15000, 1, 75}},
		{Type: model.Walk, Data: []float64{9000, 1, 75, 180}},
	}
}

// LoadPackets reads a JSON array of packets from path.
func LoadPackets(path string) ([]model.Packet, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read packets: %w", err)
	}

	var packets []model.Packet
	if err := json.Unmarshal(b, &packets); err != nil {
		return nil, fmt.Errorf("decode packets from %s: %w", path, err)
	}
	return packets, nil
}

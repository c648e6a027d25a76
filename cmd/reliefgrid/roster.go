package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/larkspur-ops/reliefgrid/access"
	"github.com/larkspur-ops/reliefgrid/fleet"
	"github.com/larkspur-ops/reliefgrid/timewindow"
)

// vehicleDoc/zoneDoc are the on-disk YAML shapes for the fleet and zone
// rosters a run needs beyond the World Graph snapshot itself, mirroring
// worldgraph.Builder's yamlNode/yamlDoc decode-then-convert pattern.
type vehicleDoc struct {
	Vehicles []struct {
		ID       string  `yaml:"id"`
		Kind     string  `yaml:"kind"`
		Location string  `yaml:"location"`
		Capacity float64 `yaml:"capacity"`
		Range    float64 `yaml:"range"`
		Fuel     float64 `yaml:"fuel"`
	} `yaml:"vehicles"`
}

type zoneDoc struct {
	Zones []struct {
		ID         string             `yaml:"id"`
		NodeKey    string             `yaml:"node_key"`
		Population float64            `yaml:"population"`
		Priority   string             `yaml:"priority"`
		Needs      map[string]float64 `yaml:"needs"`
		Opened     float64            `yaml:"opened"`
		Duration   float64            `yaml:"duration"`
	} `yaml:"zones"`
}

func loadVehicles(path string) ([]*fleet.Vehicle, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fleet file: %w", err)
	}

	var doc vehicleDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing fleet file: %w", err)
	}

	vehicles := make([]*fleet.Vehicle, 0, len(doc.Vehicles))
	for _, v := range doc.Vehicles {
		kind, err := vehicleKindFromString(v.Kind)
		if err != nil {
			return nil, fmt.Errorf("vehicle %q: %w", v.ID, err)
		}
		vehicles = append(vehicles, &fleet.Vehicle{
			ID:       v.ID,
			Kind:     kind,
			Location: v.Location,
			Capacity: v.Capacity,
			Range:    v.Range,
			Fuel:     v.Fuel,
		})
	}

	return vehicles, nil
}

func loadZones(path string) ([]*fleet.Zone, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading zones file: %w", err)
	}

	var doc zoneDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing zones file: %w", err)
	}

	zones := make([]*fleet.Zone, 0, len(doc.Zones))
	for _, z := range doc.Zones {
		priority, err := priorityFromString(z.Priority)
		if err != nil {
			return nil, fmt.Errorf("zone %q: %w", z.ID, err)
		}
		zones = append(zones, &fleet.Zone{
			ID:         z.ID,
			NodeKey:    z.NodeKey,
			Population: z.Population,
			Priority:   priority,
			Needs:      z.Needs,
			Window: timewindow.Window{
				ZoneID:   z.ID,
				Opened:   timewindow.SimTime(z.Opened),
				Duration: z.Duration,
				Priority: priority,
			},
		})
	}

	return zones, nil
}

func vehicleKindFromString(s string) (access.VehicleKind, error) {
	switch strings.ToLower(s) {
	case "truck":
		return access.Truck, nil
	case "van":
		return access.Van, nil
	case "boat":
		return access.Boat, nil
	case "drone":
		return access.Drone, nil
	case "helicopter":
		return access.Helicopter, nil
	default:
		return 0, fmt.Errorf("unknown vehicle kind %q", s)
	}
}

func priorityFromString(s string) (timewindow.Priority, error) {
	switch strings.ToLower(s) {
	case "low":
		return timewindow.PriorityLow, nil
	case "medium":
		return timewindow.PriorityMedium, nil
	case "high":
		return timewindow.PriorityHigh, nil
	case "critical":
		return timewindow.PriorityCritical, nil
	case "emergency":
		return timewindow.PriorityEmergency, nil
	default:
		return 0, fmt.Errorf("unknown priority %q", s)
	}
}

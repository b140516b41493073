package intel

import "strings"

// CatalogEntry is one curated description keyed by a lower-case integration
// name. Keys may contain spaces.
type CatalogEntry struct {
	Key         string `yaml:"key" json:"key"`
	Description string `yaml:"description" json:"description"`
}

// Catalog is an ordered list of curated descriptions. Order is significant:
// when several keys match a name the earliest entry wins.
type Catalog []CatalogEntry

// exact returns the entry whose key equals k.
func (c Catalog) exact(k string) (CatalogEntry, bool) {
	for _, e := range c {
		if e.Key == k {
			return e, true
		}
	}
	return CatalogEntry{}, false
}

// fuzzy returns the first entry where name contains the key, or the key
// (spaces as underscores) contains name. name must already be lower-cased.
func (c Catalog) fuzzy(name string) (CatalogEntry, bool) {
	for _, e := range c {
		if e.Key == "" {
			continue
		}
		if strings.Contains(name, e.Key) {
			return e, true
		}
		if name != "" && strings.Contains(strings.ReplaceAll(e.Key, " ", "_"), name) {
			return e, true
		}
	}
	return CatalogEntry{}, false
}

// DefaultCatalog ships with the binary and can be replaced through
// configuration.
var DefaultCatalog = Catalog{
	{"zigbee2mqtt", "Bridges Zigbee devices to Home Assistant over MQTT without vendor hubs, exposing sensors, lights and switches as native entities."},
	{"philips hue", "Controls Philips Hue lights, scenes and motion sensors through the local bridge API with instant state updates."},
	{"esphome", "Connects ESP8266 and ESP32 boards running ESPHome firmware, giving native API access to custom sensors and actuators."},
	{"tasmota", "Discovers Tasmota-flashed plugs, switches and sensors over MQTT and maps their telemetry to Home Assistant entities."},
	{"shelly", "Integrates Shelly relays, dimmers and power meters locally over CoAP and the Gen2 RPC API, with no cloud dependency."},
	{"tuya", "Brings Tuya and Smart Life devices into Home Assistant through the Tuya cloud or local keys for faster, offline control."},
	{"tesla", "Surfaces Tesla vehicle state, charging controls and climate settings, and Powerwall energy flows, as Home Assistant entities."},
	{"sonos", "Controls Sonos speakers, groups and favorites with media player entities and real-time playback state."},
	{"ring doorbell", "Exposes Ring doorbells, cameras and alarm sensors, including motion and ding events for automations."},
	{"google nest", "Integrates Google Nest thermostats, cameras and doorbells through the Smart Device Management API."},
	{"ecobee", "Controls ecobee thermostats and remote room sensors, with comfort settings, occupancy and humidity data."},
	{"unifi", "Tracks network clients and controls UniFi Protect cameras and access points for presence detection and security."},
	{"frigate", "Adds Frigate NVR object detection events, camera snapshots and recordings for local, AI-driven surveillance."},
	{"mqtt", "Generic MQTT integration that lets any publisher appear in Home Assistant through topic-based discovery."},
	{"alexa", "Links Amazon Alexa devices for voice control, announcements and routine triggers inside Home Assistant."},
	{"google home", "Connects Google Home and Nest speakers for casting, timers and voice-assistant control of Home Assistant entities."},
	{"homekit", "Bridges Home Assistant entities to Apple HomeKit, and pulls HomeKit-native accessories back in, for Siri and the Home app."},
	{"z-wave", "Manages Z-Wave networks through Z-Wave JS, supporting secure inclusion, device configuration and firmware updates."},
	{"matter", "Commissions and controls Matter-certified devices locally over Thread and Wi-Fi through the Matter server."},
	{"xiaomi", "Integrates Xiaomi Mi Home and Aqara sensors, vacuums and air purifiers with local protocol support where available."},
	{"ikea", "Controls IKEA TRÅDFRI and DIRIGERA lights, blinds and remotes through the local gateway."},
	{"spotify", "Provides a Spotify Connect media player with playlist browsing and playback control from Home Assistant."},
	{"octoprint", "Monitors OctoPrint-managed 3D printers with job progress, temperatures and camera feeds."},
	{"solaredge", "Reads SolarEdge inverter production, consumption and battery data for the Home Assistant energy dashboard."},
	{"wled", "Controls WLED addressable LED strips with effects, palettes, segments and real-time sync."},
	{"nuki", "Integrates Nuki smart locks and openers with lock state, battery level and door sensor events."},
}

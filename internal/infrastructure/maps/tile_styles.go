package maps

import (
	"strings"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
)

const (
	DefaultTileStyle = "openstreetmap"
	tileMaxZoom      = 19

	cartoDark = "https://{s}.basemaps.cartocdn.com/dark_all/{z}/{x}/{y}{r}.png"
)

var tileStyles = []model.TileStyle{
	{
		Name:        "openstreetmap",
		Light:       "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
		Dark:        cartoDark,
		Attribution: `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`,
		Subdomains:  "abc",
	},
	{
		Name:        "esri",
		Light:       "https://server.arcgisonline.com/ArcGIS/rest/services/World_Street_Map/MapServer/tile/{z}/{y}/{x}",
		Dark:        cartoDark,
		Attribution: "Tiles &copy; Esri",
	},
	{
		Name:        "voyager",
		Light:       "https://{s}.basemaps.cartocdn.com/rastertiles/voyager/{z}/{x}/{y}{r}.png",
		Dark:        cartoDark,
		Attribution: `&copy; <a href="https://carto.com/attributions">CARTO</a>`,
		Subdomains:  "abcd",
	},
	{
		Name:        "satellite",
		Light:       "https://server.arcgisonline.com/ArcGIS/rest/services/World_Imagery/MapServer/tile/{z}/{y}/{x}",
		Dark:        "https://server.arcgisonline.com/ArcGIS/rest/services/World_Imagery/MapServer/tile/{z}/{y}/{x}",
		Attribution: "Tiles &copy; Esri &mdash; Source: Esri, i-cubed, USDA, USGS, AEX, GeoEye, Getmapping, Aerogrid, IGN, IGP, UPR-EGP, and the GIS User Community",
	},
	{
		Name:        "terrain",
		Light:       "https://tiles.stadiamaps.com/tiles/stamen_terrain/{z}/{x}/{y}.jpg",
		Dark:        cartoDark,
		Attribution: `&copy; <a href="https://stadiamaps.com/">Stadia Maps</a>, &copy; <a href="https://openmaptiles.org/">OpenMapTiles</a> &copy; <a href="http://openstreetmap.org">OpenStreetMap</a> contributors`,
	},
}

// TileStyles lists the available background styles
func TileStyles() []model.TileStyle {
	out := make([]model.TileStyle, len(tileStyles))
	copy(out, tileStyles)
	return out
}

// ResolveTileLayer picks the URL template for a style and theme. Unknown styles fall back to openstreetmap.
func ResolveTileLayer(name string, dark bool) model.TileLayer {
	style := tileStyles[0]
	for _, s := range tileStyles {
		if s.Name == strings.ToLower(strings.TrimSpace(name)) {
			style = s
			break
		}
	}

	url := style.Light
	if dark {
		url = style.Dark
	}
	return model.TileLayer{
		Style:       style.Name,
		URL:         url,
		Attribution: style.Attribution,
		Subdomains:  style.Subdomains,
		MaxZoom:     tileMaxZoom,
		Dark:        dark,
	}
}

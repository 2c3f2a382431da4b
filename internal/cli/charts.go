package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/starchart/pkg/celestial"
	"github.com/matzehuels/starchart/pkg/optics"
	"github.com/matzehuels/starchart/pkg/scene"
	"github.com/matzehuels/starchart/pkg/viewport"
)

// chartFlags configure a quick chart drawn without a scene file.
type chartFlags struct {
	outputFlags

	time       string
	style      string
	layers     string
	resolution int
	limit      float64
	infoText   bool
	collisions bool
	title      string
}

func (f *chartFlags) register(cmd *cobra.Command) {
	f.outputFlags.register(cmd)
	cmd.Flags().StringVar(&f.time, "time", "", "chart time, RFC 3339 (default now)")
	cmd.Flags().StringVar(&f.style, "style", "", "style presets, applied in order (comma-separated)")
	cmd.Flags().StringVar(&f.layers, "layers", "", "layers to draw (comma-separated, default depends on the chart)")
	cmd.Flags().IntVar(&f.resolution, "resolution", 0, "canvas width in pixels (default 2048)")
	cmd.Flags().Float64Var(&f.limit, "limit", 0, "faintest star magnitude drawn (default 6)")
	cmd.Flags().BoolVar(&f.infoText, "info", false, "add time, location and optic details")
	cmd.Flags().BoolVar(&f.collisions, "allow-label-collisions", false, "keep labels that overlap")
	cmd.Flags().StringVar(&f.title, "title", "", "title stored in the output metadata")
}

// options builds the scene shared by every quick chart.
func (f *chartFlags) options(cmd *cobra.Command, kind string) (scene.Options, error) {
	when, err := parseTime(f.time)
	if err != nil {
		return scene.Options{}, err
	}
	opts := scene.Options{
		Kind:                 kind,
		Time:                 when,
		Style:                splitList(f.style),
		Layers:               splitList(f.layers),
		Resolution:           f.resolution,
		Limit:                f.limit,
		InfoText:             f.infoText,
		AllowLabelCollisions: f.collisions,
		Title:                f.title,
	}
	f.outputFlags.apply(cmd, &opts)
	return opts, nil
}

// mapCommand draws a map chart of a region of sky.
func (c *CLI) mapCommand() *cobra.Command {
	var f chartFlags
	var projection string
	vp := viewport.Full()

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Draw a map of a region of the sky",
		Example: `  starchart map --projection stereo_north --ra-min 3.5 --ra-max 7 --dec-min -15 --dec-max 25 -o orion.svg
  starchart map --projection mollweide -f png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cmd, scene.KindMap)
			if err != nil {
				return err
			}
			opts.Projection = projection
			opts.Viewport = vp
			c.applyConfig(&opts)
			return c.runScene(cmd.Context(), opts, &f.outputFlags, "map")
		},
	}
	f.register(cmd)
	cmd.Flags().StringVarP(&projection, "projection", "p", "mercator", "projection: mercator, mollweide, stereo_north, stereo_south")
	cmd.Flags().Float64Var(&vp.RAMin, "ra-min", vp.RAMin, "minimum right ascension in hours")
	cmd.Flags().Float64Var(&vp.RAMax, "ra-max", vp.RAMax, "maximum right ascension in hours")
	cmd.Flags().Float64Var(&vp.DecMin, "dec-min", vp.DecMin, "minimum declination in degrees")
	cmd.Flags().Float64Var(&vp.DecMax, "dec-max", vp.DecMax, "maximum declination in degrees")
	return cmd
}

// observerFlags locate the observer.
type observerFlags struct {
	lat, lon float64
}

func (o *observerFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&o.lat, "lat", 0, "observer latitude in degrees, north positive")
	cmd.Flags().Float64Var(&o.lon, "lon", 0, "observer longitude in degrees, east positive")
}

// set reports whether the user gave a location.
func (o *observerFlags) set(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("lat") || cmd.Flags().Changed("lon")
}

func (o *observerFlags) observer(opts scene.Options) *celestial.Observer {
	return &celestial.Observer{Lat: o.lat, Lon: o.lon, Time: opts.Time}
}

// zenithCommand draws the whole sky above an observer.
func (c *CLI) zenithCommand() *cobra.Command {
	var f chartFlags
	var obs observerFlags

	cmd := &cobra.Command{
		Use:     "zenith",
		Short:   "Draw the whole sky above an observer",
		Example: `  starchart zenith --lat 40.7 --lon -74 --time 2024-03-15T04:00:00Z --info`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cmd, scene.KindZenith)
			if err != nil {
				return err
			}
			opts.Observer = obs.observer(opts)
			c.applyConfig(&opts)
			return c.runScene(cmd.Context(), opts, &f.outputFlags, "zenith")
		},
	}
	f.register(cmd)
	obs.register(cmd)
	return cmd
}

// opticCommand draws the view through binoculars, a telescope or a camera.
func (c *CLI) opticCommand() *cobra.Command {
	var f chartFlags
	var obs observerFlags
	var spec optics.Spec
	var center celestial.Coord
	var target string
	var reticle bool

	cmd := &cobra.Command{
		Use:   "optic",
		Short: "Draw the view through binoculars, a telescope or a camera",
		Example: `  starchart optic --optic binoculars --magnification 10 --fov 65 --target M45
  starchart optic --optic refractor --focal-length 600 --eyepiece-focal-length 25 --eyepiece-fov 52 --target jupiter --lat 40.7 --lon -74
  starchart optic --optic camera --sensor-width 23.5 --sensor-height 15.6 --lens-focal-length 135 --ra 5.59 --dec -5.4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cmd, scene.KindOptic)
			if err != nil {
				return err
			}
			opts.Optic = &spec
			opts.Target = target
			opts.Center = center
			opts.Reticle = reticle
			if obs.set(cmd) {
				opts.Observer = obs.observer(opts)
			}
			c.applyConfig(&opts)
			return c.runScene(cmd.Context(), opts, &f.outputFlags, "optic")
		},
	}
	f.register(cmd)
	obs.register(cmd)
	cmd.Flags().StringVar(&target, "target", "", "star name, Messier id or solar system body to center on")
	cmd.Flags().Float64Var(&center.RA, "ra", 0, "center right ascension in hours, when no target is given")
	cmd.Flags().Float64Var(&center.Dec, "dec", 0, "center declination in degrees, when no target is given")
	cmd.Flags().BoolVar(&reticle, "reticle", false, "mark the center")
	cmd.Flags().StringVar(&spec.Type, "optic", "binoculars", "optic type: binoculars, scope, refractor, reflector, camera")
	cmd.Flags().Float64Var(&spec.Magnification, "magnification", 10, "binocular magnification")
	cmd.Flags().Float64Var(&spec.FOV, "fov", 65, "binocular apparent field of view in degrees")
	cmd.Flags().Float64Var(&spec.FocalLength, "focal-length", 0, "telescope focal length in mm")
	cmd.Flags().Float64Var(&spec.EyepieceFocalLength, "eyepiece-focal-length", 0, "eyepiece focal length in mm")
	cmd.Flags().Float64Var(&spec.EyepieceFOV, "eyepiece-fov", 0, "eyepiece apparent field of view in degrees")
	cmd.Flags().Float64Var(&spec.SensorWidth, "sensor-width", 0, "camera sensor width in mm")
	cmd.Flags().Float64Var(&spec.SensorHeight, "sensor-height", 0, "camera sensor height in mm")
	cmd.Flags().Float64Var(&spec.LensFocalLength, "lens-focal-length", 0, "camera lens focal length in mm")
	cmd.Flags().Float64Var(&spec.Rotation, "rotation", 0, "camera rotation in degrees")
	return cmd
}

package device

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"
)

// StatusHandler reports the device's current color
func StatusHandler(d Device) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
		defer cancel()

		color, err := d.Status(ctx)
		if err != nil {
			log.Printf("ERR: %s: status: %s", d.Label(), err)
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error": "unable to get device state"}`))
			return
		}

		hue, saturation, brightness := color.Scaled()
		fmt.Fprintf(
			w,
			`{"hue": %.2f, "saturation": %.2f, "brightness": %.2f, "kelvin": %d}`,
			hue,
			saturation,
			brightness,
			color.Kelvin,
		)
	}
}

// PowerHandler transitions the device to the color given by the hue,
// saturation, brightness and kelvin form values. Brightness is
// required; transition defaults to two seconds and bare integers are
// read as milliseconds.
func PowerHandler(d Device) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()

		if _, ok := r.Form["brightness"]; !ok {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": "brightness parameter is required"}`))
			return
		}

		var values [3]float64
		for i, name := range []string{"hue", "saturation", "brightness"} {
			if _, ok := r.Form[name]; !ok {
				continue
			}

			param := r.FormValue(name)
			p, err := strconv.ParseFloat(param, 64)
			if err != nil {
				log.Printf("ERR: %s: parse %s param %q: %s", d.Label(), name, param, err)
				w.WriteHeader(http.StatusBadRequest)
				fmt.Fprintf(w, `{"error": "unable to parse %s parameter"}`, name)
				return
			}
			values[i] = p
		}

		var kelvin int
		if _, ok := r.Form["kelvin"]; ok {
			param := r.FormValue("kelvin")
			p, err := strconv.Atoi(param)
			if err != nil {
				log.Printf("ERR: %s: parse kelvin param %q: %s", d.Label(), param, err)
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"error": "unable to parse kelvin parameter"}`))
				return
			}
			kelvin = p
		}

		transition := defaultPowerTransition
		if _, ok := r.Form["transition"]; ok {
			param := r.FormValue("transition")
			_, err := strconv.Atoi(param)
			if err == nil && param != "" {
				param = param + "ms"
			}

			parsed, err := time.ParseDuration(param)
			if err != nil {
				log.Printf("ERR: %s: parse transition param %q: %s", d.Label(), param, err)
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"error": "unable to parse transition parameter"}`))
				return
			}
			transition = parsed
		}

		color := NewColor(values[0], values[1], values[2], kelvin)
		err := d.Transition(color, transition)
		if err != nil {
			log.Printf("ERR: transition: %s", err)
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error": "unable to set color on device"}`))
			return
		}

		hue, saturation, brightness := color.Scaled()
		fmt.Fprintf(
			w,
			`{"hue": %.2f, "saturation": %.2f, "brightness": %.2f, "kelvin": %d, "transition": %q}`,
			hue,
			saturation,
			brightness,
			color.Kelvin,
			transition,
		)
	}
}

package render

import (
	"bytes"
	"strings"
	"text/template"
	"unicode"

	"patientgift/domain"
)

var modelReplacer = strings.NewReplacer(`\`, " ", `"`, "'")

// SanitizeModelText makes s safe to place between double quotes in an
// OpenSCAD string literal.
func SanitizeModelText(s string) string {
	s = modelReplacer.Replace(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
}

var modelTemplate = template.Must(template.New("tag.scad").Parse(`// Generated by Patient Gift
// Open in OpenSCAD and render/export STL.
// Tip: Cyrillic text depends on installed fonts. If text is missing, set font_name.

name = "{{.Name}}";
use_text = true;
font_name = "DejaVu Sans";

// Breath dots: count completed exhale cycles
breath_dots = 8;

// Basic size parameters (mm)
plate_w = 52;
plate_h = 28;
plate_t = 3.0;
text_t  = 0.8;
text_size = 8;
hole_r = 2.2;
hole_offset = 5.5;

dot_r = 1.0;
dot_h = 0.7;

$fn = 64;

module rounded_rect(w, h, r) {
  hull() {
    translate([r, r, 0]) circle(r=r);
    translate([w-r, r, 0]) circle(r=r);
    translate([r, h-r, 0]) circle(r=r);
    translate([w-r, h-r, 0]) circle(r=r);
  }
}

module tag(n) {
    difference() {
        union() {
            // base
            linear_extrude(height=plate_t) rounded_rect(plate_w, plate_h, 4);

            // tactile breath dots (raised)
            for (i = [0 : breath_dots-1]) {
                x = 16 + i * ((plate_w - 26) / max(1, breath_dots-1));
                y = 6;
                translate([x, y, plate_t]) cylinder(h=dot_h, r=dot_r);
            }
        }

        // keyring hole
        translate([hole_offset, plate_h-hole_offset, 0])
            cylinder(h=plate_t+1.0, r=hole_r);

        // debossed name
        if (use_text) {
            translate([plate_w/2, plate_h/2+2, plate_t-text_t])
                linear_extrude(height=text_t+0.2)
                    text(n, size=text_size, halign="center", valign="center", font=font_name);
        }

        // small debossed instruction
        translate([plate_w/2, plate_h/2-7, plate_t-0.6])
            linear_extrude(height=0.8)
                text("4-6", size=6, halign="center", valign="center", font=font_name);
    }
}

tag(name);
`))

// ModelScript renders the OpenSCAD key-tag script for a gift.
func ModelScript(g *domain.Gift) []byte {
	var buf bytes.Buffer
	// The template only interpolates a string into a bytes.Buffer, it cannot fail.
	_ = modelTemplate.Execute(&buf, struct{ Name string }{Name: SanitizeModelText(g.PatientName)})
	return buf.Bytes()
}

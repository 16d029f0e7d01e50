package prefs

// Answers for settings that ask a yes/no question with an "ask every
// time" option.
const (
	AnswerYes = "yes"
	AnswerNo  = "no"
	AnswerAsk = "ask"
)

// color builds the open mapping representation of an RGBA color.
// Components are fractions in [0, 1].
func color(red, green, blue, alpha float64) map[string]any {
	return map[string]any{"red": red, "green": green, "blue": blue, "alpha": alpha}
}

// Defaults returns the preference default table. The runtime type of each
// default fixes the accepted type of all future values for that key; an
// integer is accepted wherever a float is expected. Keys absent from a
// persisted file keep their default, so new keys can be added here
// without migration code.
func Defaults() map[string]any {
	return map[string]any{
		"unit":                          "mm",
		"save_project_settings_on_exit": AnswerAsk,
		"show_model":                    true,
		"show_support_preview":          true,
		"show_axes":                     true,
		"show_dimensions":               true,
		"show_bounding_box":             true,
		"show_toolpath":                 true,
		"show_tool":                     false,
		"show_directions":               false,
		"show_grid":                     false,
		"color_background":              color(0.0, 0.0, 0.0, 1.0),
		"color_model":                   color(0.5, 0.5, 1.0, 1.0),
		"color_support_preview":         color(0.8, 0.8, 0.3, 1.0),
		"color_bounding_box":            color(0.3, 0.3, 0.3, 1.0),
		"color_tool":                    color(1.0, 0.2, 0.2, 1.0),
		"color_toolpath_cut":            color(1.0, 0.5, 0.5, 1.0),
		"color_toolpath_return":         color(0.9, 1.0, 0.1, 0.4),
		"color_material":                color(1.0, 0.5, 0.0, 1.0),
		"color_grid":                    color(0.75, 1.0, 0.7, 0.55),
		"view_light":                    true,
		"view_shadow":                   true,
		"view_polygon":                  true,
		"view_perspective":              true,
		"tool_progress_max_fps":         30.0,
		"gcode_safety_height":           25.0,
		"gcode_plunge_feedrate":         100.0,
		"gcode_minimum_step_x":          0.0001,
		"gcode_minimum_step_y":          0.0001,
		"gcode_minimum_step_z":          0.0001,
		"gcode_path_mode":               0,
		"gcode_motion_tolerance":        0,
		"gcode_naive_tolerance":         0,
		"gcode_start_stop_spindle":      true,
		"gcode_filename_extension":      "",
		"gcode_spindle_delay":           3,
		"external_program_inkscape":     "",
		"external_program_pstoedit":     "",
		"touch_off_on_startup":          false,
		"touch_off_on_tool_change":      false,
		"touch_off_position_type":       "absolute",
		"touch_off_position_x":          0.0,
		"touch_off_position_y":          0.0,
		"touch_off_position_z":          0.0,
		"touch_off_rapid_move":          0.0,
		"touch_off_slow_move":           1.0,
		"touch_off_slow_feedrate":       20,
		"touch_off_height":              0.0,
		"touch_off_pause_execution":     false,
	}
}

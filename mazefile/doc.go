// Package mazefile loads maze definitions from disk.
//
// Two formats are accepted:
//
//   - HCL (".hcl"): one or more maze blocks, each with a layout heredoc and
//     optional wall symbol, endpoint coordinates and marker symbols.
//   - Plain text (any other extension): the whole file is the layout; the
//     maze is named after the file and endpoints come from markers.
//
// Example HCL file:
//
//	maze "pillar" {
//	  wall   = "#"
//	  start  = [1, 1]
//	  layout = <<EOT
//	#####
//	#→  #
//	# # #
//	#  @#
//	#####
//	EOT
//	}
//
// When start or target is omitted it is located by its marker symbol
// (start_marker, default "→"; target_marker, default "@"). An endpoint that
// is neither given nor found stays nil so callers can supply it separately.
package mazefile

package nuke

// trackerNodeClass is the Nuke node class emitted for tracking groups.
const trackerNodeClass = "Tracker4"

// trackerNodePrefix is prepended to the sanitized group name to name each node.
const trackerNodePrefix = "trackerFromBlender_"

// tracker4ColumnCount is the number of columns declared by tracker4Columns.
const tracker4ColumnCount = 31

// tracker4Columns is the Tracker4 track table schema as written by Nuke 14.
// Every row produced by renderRow must supply exactly these columns.
const tracker4Columns = `  { { 5 1 20 enable e 1 }
  { 3 1 75 name name 1 }
  { 2 1 58 track_x track_x 1 }
  { 2 1 58 track_y track_y 1 }
  { 2 1 63 offset_x offset_x 1 }
  { 2 1 63 offset_y offset_y 1 }
  { 4 1 27 T T 1 }
  { 4 1 27 R R 1 }
  { 4 1 27 S S 1 }
  { 2 0 45 error error 1 }
  { 1 1 0 error_min error_min 1 }
  { 1 1 0 error_max error_max 1 }
  { 1 1 0 pattern_x pattern_x 1 }
  { 1 1 0 pattern_y pattern_y 1 }
  { 1 1 0 pattern_r pattern_r 1 }
  { 1 1 0 pattern_t pattern_t 1 }
  { 1 1 0 search_x search_x 1 }
  { 1 1 0 search_y search_y 1 }
  { 1 1 0 search_r search_r 1 }
  { 1 1 0 search_t search_t 1 }
  { 2 1 0 key_track key_track 1 }
  { 2 1 0 key_search_x key_search_x 1 }
  { 2 1 0 key_search_y key_search_y 1 }
  { 2 1 0 key_search_r key_search_r 1 }
  { 2 1 0 key_search_t key_search_t 1 }
  { 2 1 0 key_track_x key_track_x 1 }
  { 2 1 0 key_track_y key_track_y 1 }
  { 2 1 0 key_track_r key_track_r 1 }
  { 2 1 0 key_track_t key_track_t 1 }
  { 2 1 0 key_centre_offset_x key_centre_offset_x 1 }
  { 2 1 0 key_centre_offset_y key_centre_offset_y 1 }
`

// trackRowTail holds the pattern/search geometry and keyframe-linking
// columns that follow the error curve in every row.
const trackRowTail = `1 0 -32 -32 32 32 -22 -22 22 22 {} {}  {}  {}  {}  {}  {}  {}  {}  {}  {}   }`

package flow

// DefaultProject is the starter document used when no project file
// exists: a sample model with rough and fine milling tasks.
const DefaultProject = `models:
  model:
    source:
      type: file
      location: samples/Box0.stl
    X-Application:
      camflow-ui:
        name: Example 3D Model
        color: { red: 0.1, green: 0.4, blue: 1.0, alpha: 0.8 }

tools:
  rough:
    tool_id: 1
    shape: flat_bottom
    radius: 3
    feed: 600
    spindle_speed: 1000
    X-Application: { camflow-ui: { name: Big Tool } }
  fine:
    tool_id: 2
    shape: ball_nose
    radius: 1
    feed: 1200
    spindle_speed: 1000
    X-Application: { camflow-ui: { name: Small Tool } }

processes:
  process_slicing:
    strategy: slice
    path_pattern: grid
    overlap: 0.10
    step_down: 3.0
    grid_direction: y
    milling_style: ignore
    X-Application: { camflow-ui: { name: Slice (rough) } }
  process_surfacing:
    strategy: surface
    overlap: 0.80
    step_down: 1.0
    grid_direction: x
    milling_style: ignore
    X-Application: { camflow-ui: { name: Surface (fine) } }

bounds:
  minimal:
    specification: margins
    lower: [5, 5, 0]
    upper: [5, 5, 1]
    X-Application: { camflow-ui: { name: minimal } }

tasks:
  rough:
    type: milling
    tool: rough
    process: process_slicing
    bounds: minimal
    collision_models: [ model ]
    X-Application: { camflow-ui: { name: Quick Removal } }
  fine:
    type: milling
    tool: fine
    process: process_surfacing
    bounds: minimal
    collision_models: [ model ]
    X-Application: { camflow-ui: { name: Finishing } }
`

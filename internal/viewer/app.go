// Package viewer renders generated terrain in an interactive window.
// It is a thin consumer of the terrain package: it streams chunk meshes
// around the camera, uploads whatever the store has finished building,
// and draws. All generation happens in the terrain streamer's workers.
package viewer

import (
	"fmt"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/sundjerbob/ww3-sub001/internal/graphics"
	"github.com/sundjerbob/ww3-sub001/internal/profiling"
	"github.com/sundjerbob/ww3-sub001/internal/terrain"
)

func init() {
	// GLFW event handling and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

// Options configures the viewer window and streaming behavior.
type Options struct {
	Width    int
	Height   int
	FPSLimit int
	// Radius is the streaming radius around the camera, in chunks.
	Radius int
}

const vertexShaderSrc = `#version 410 core
layout(location = 0) in vec3 position;
layout(location = 1) in vec3 normal;

uniform mat4 projection;
uniform mat4 view;

out vec3 fragNormal;
out float fragHeight;

void main() {
	fragNormal = normal;
	fragHeight = position.y;
	gl_Position = projection * view * vec4(position, 1.0);
}`

const fragmentShaderSrc = `#version 410 core
in vec3 fragNormal;
in float fragHeight;

uniform vec3 lightDir;
uniform float minHeight;
uniform float maxHeight;

out vec4 fragColor;

void main() {
	float t = clamp((fragHeight - minHeight) / (maxHeight - minHeight), 0.0, 1.0);
	vec3 low = vec3(0.13, 0.35, 0.16);
	vec3 high = vec3(0.55, 0.52, 0.46);
	vec3 base = mix(low, high, t);

	float diffuse = max(dot(normalize(fragNormal), -lightDir), 0.0);
	vec3 color = base * (0.25 + 0.75 * diffuse);
	fragColor = vec4(color, 1.0);
}`

// App owns the window, camera and per-chunk GPU meshes.
type App struct {
	window   *glfw.Window
	shader   *graphics.Shader
	camera   *graphics.Camera
	store    *terrain.Store
	streamer *terrain.Streamer
	opts     Options
	logger   *log.Logger

	meshes map[terrain.ChunkCoord]*graphics.TerrainMesh

	lastCursorX, lastCursorY float64
	cursorSeen               bool
}

// New creates the window and GL state. Call Run next; Close releases
// everything.
func New(store *terrain.Store, opts Options) (*App, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "viewer",
	})

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("viewer: glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(opts.Width, opts.Height, "terraingen", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("viewer: create window: %w", err)
	}
	window.MakeContextCurrent()
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	glfw.SwapInterval(0)

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("viewer: gl init: %w", err)
	}

	shader, err := graphics.NewShader(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}

	gl.Enable(gl.DEPTH_TEST)
	// Mesh triangles wind counter-clockwise seen from above, so standard
	// back-face culling is correct.
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.ClearColor(0.53, 0.71, 0.92, 1.0)

	return &App{
		window:   window,
		shader:   shader,
		camera:   graphics.NewCamera(opts.Width, opts.Height),
		store:    store,
		streamer: terrain.NewStreamer(store),
		opts:     opts,
		logger:   logger,
		meshes:   make(map[terrain.ChunkCoord]*graphics.TerrainMesh),
	}, nil
}

// Run drives the render loop until the window closes or Esc is pressed.
func (a *App) Run() {
	limiter := NewFPSLimiter(a.opts.FPSLimit)
	lastFrame := glfw.GetTime()

	statTicker := time.NewTicker(5 * time.Second)
	defer statTicker.Stop()

	for !a.window.ShouldClose() {
		now := glfw.GetTime()
		dt := float32(now - lastFrame)
		lastFrame = now

		a.handleInput(dt)

		pos := a.camera.Position
		a.streamer.StreamAround(float64(pos.X()), float64(pos.Z()), a.opts.Radius)
		a.uploadReadyChunks()

		a.render()

		a.window.SwapBuffers()
		glfw.PollEvents()

		select {
		case <-statTicker.C:
			a.logger.Info("frame stats",
				"chunks", a.store.Len(),
				"uploaded", len(a.meshes),
				"pending", a.streamer.PendingCount(),
				"timings", profiling.TopN(3))
			profiling.Reset()
		default:
		}

		limiter.Wait()
	}
}

// Close tears down GPU resources, the streamer and the window.
func (a *App) Close() {
	a.streamer.Close()
	for _, m := range a.meshes {
		m.Delete()
	}
	a.shader.Delete()
	glfw.Terminate()
}

func (a *App) handleInput(dt float32) {
	if a.window.GetKey(glfw.KeyEscape) == glfw.Press {
		a.window.SetShouldClose(true)
	}

	speed := 20 * dt
	if a.window.GetKey(glfw.KeyLeftControl) == glfw.Press {
		speed *= 4
	}

	var forward, right, up float32
	if a.window.GetKey(glfw.KeyW) == glfw.Press {
		forward += speed
	}
	if a.window.GetKey(glfw.KeyS) == glfw.Press {
		forward -= speed
	}
	if a.window.GetKey(glfw.KeyD) == glfw.Press {
		right += speed
	}
	if a.window.GetKey(glfw.KeyA) == glfw.Press {
		right -= speed
	}
	if a.window.GetKey(glfw.KeySpace) == glfw.Press {
		up += speed
	}
	if a.window.GetKey(glfw.KeyLeftShift) == glfw.Press {
		up -= speed
	}
	a.camera.Move(forward, right, up)

	x, y := a.window.GetCursorPos()
	if a.cursorSeen {
		const sensitivity = 0.1
		a.camera.Rotate(float32(x-a.lastCursorX)*sensitivity, float32(y-a.lastCursorY)*sensitivity)
	}
	a.lastCursorX, a.lastCursorY = x, y
	a.cursorSeen = true
}

// uploadReadyChunks uploads meshes the streamer finished since the last
// frame. The store keeps ownership of the CPU-side buffers; the GPU copy
// lives until the chunk set is cleared.
func (a *App) uploadReadyChunks() {
	defer profiling.Track("viewer.uploadReadyChunks")()

	pos := a.camera.Position
	size := a.store.ChunkParams().ChunkSize
	cx := int32(math.Floor(float64(pos.X()) / size))
	cz := int32(math.Floor(float64(pos.Z()) / size))

	r := int32(a.opts.Radius)
	for dz := -r; dz <= r; dz++ {
		for dx := -r; dx <= r; dx++ {
			coord := terrain.ChunkCoord{X: cx + dx, Z: cz + dz}
			if _, ok := a.meshes[coord]; ok {
				continue
			}
			// IsGenerated takes the store lock, which publishes the
			// buffers written by the streamer workers to this thread.
			if !a.store.IsGenerated(coord.X, coord.Z) {
				continue
			}
			a.meshes[coord] = graphics.UploadTerrainMesh(a.store.Get(coord.X, coord.Z))
		}
	}
}

func (a *App) render() {
	defer profiling.Track("viewer.render")()

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	a.shader.Use()
	projection := a.camera.ProjectionMatrix()
	view := a.camera.ViewMatrix()
	a.shader.SetMatrix4("projection", &projection[0])
	a.shader.SetMatrix4("view", &view[0])
	a.shader.SetVector3("lightDir", -0.4, -0.8, -0.45)

	p := a.store.HeightField().Params()
	a.shader.SetFloat("minHeight", float32(p.BaseHeight-p.Amplitude))
	a.shader.SetFloat("maxHeight", float32(p.BaseHeight+p.Amplitude))

	for _, m := range a.meshes {
		m.Draw()
	}
}

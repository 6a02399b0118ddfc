// Command orbit is a demo viewer: a grid of spinning cubes with an orbit
// camera and click picking. It exists to exercise the math library against
// a real GPU pipeline, double precision on the CPU side narrowing to
// float32 only at uniform upload.
package main

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/vanir/internal/camera"
	"github.com/Faultbox/vanir/internal/config"
	"github.com/Faultbox/vanir/internal/logger"
	"github.com/Faultbox/vanir/internal/picking"
	"github.com/Faultbox/vanir/internal/render"
	"github.com/Faultbox/vanir/internal/window"
	"github.com/Faultbox/vanir/pkg/vmath"
)

const vertexShader = `#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;

uniform mat4 uMVP;
uniform mat4 uModel;

out vec3 vNormal;

void main() {
    gl_Position = uMVP * vec4(aPos, 1.0);
    vNormal = mat3(uModel) * aNormal;
}
`

const fragmentShader = `#version 410 core
in vec3 vNormal;

uniform vec3 uColor;

out vec4 fragColor;

void main() {
    vec3 lightDir = normalize(vec3(0.4, 0.8, 0.6));
    float diffuse = max(dot(normalize(vNormal), lightDir), 0.0);
    vec3 shaded = uColor * (0.25 + 0.75 * diffuse);
    fragColor = vec4(shaded, 1.0);
}
`

// cube holds one scene object: its transform, spin axis and local bounds.
type cube struct {
	transform vmath.Transform
	spinAxis  vmath.Vec3
	bounds    vmath.AABB
}

// worldBounds writes the cube's world-space AABB into out.
func (c *cube) worldBounds(out *vmath.AABB) *vmath.AABB {
	out.Copy(&c.bounds)
	return out.ApplyMat4(c.transform.Matrix())
}

func buildScene(cfg *config.SceneConfig) []cube {
	n := cfg.GridCells
	if n < 1 {
		n = 1
	}
	half := cfg.CubeSize / 2
	offset := float64(n-1) / 2

	cubes := make([]cube, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var c cube
			c.transform = *vmath.NewTransform()
			c.transform.SetPosition(
				(float64(i)-offset)*cfg.CubeSpacing,
				0,
				(float64(j)-offset)*cfg.CubeSpacing,
			)
			// Vary the spin axis per cube so the grid doesn't move in
			// lockstep.
			c.spinAxis.Set(float64(i%2), 1, float64(j%2)).Normalize()
			c.bounds.Set(
				vmath.NewVec3(-half, -half, -half),
				vmath.NewVec3(half, half, half),
			)
			cubes = append(cubes, c)
		}
	}
	return cubes
}

// cubeVertices is 36 vertices of interleaved position and normal.
func cubeVertices(half float32) []float32 {
	h := half
	return []float32{
		// +z
		-h, -h, h, 0, 0, 1, h, -h, h, 0, 0, 1, h, h, h, 0, 0, 1,
		-h, -h, h, 0, 0, 1, h, h, h, 0, 0, 1, -h, h, h, 0, 0, 1,
		// -z
		h, -h, -h, 0, 0, -1, -h, -h, -h, 0, 0, -1, -h, h, -h, 0, 0, -1,
		h, -h, -h, 0, 0, -1, -h, h, -h, 0, 0, -1, h, h, -h, 0, 0, -1,
		// +x
		h, -h, h, 1, 0, 0, h, -h, -h, 1, 0, 0, h, h, -h, 1, 0, 0,
		h, -h, h, 1, 0, 0, h, h, -h, 1, 0, 0, h, h, h, 1, 0, 0,
		// -x
		-h, -h, -h, -1, 0, 0, -h, -h, h, -1, 0, 0, -h, h, h, -1, 0, 0,
		-h, -h, -h, -1, 0, 0, -h, h, h, -1, 0, 0, -h, h, -h, -1, 0, 0,
		// +y
		-h, h, h, 0, 1, 0, h, h, h, 0, 1, 0, h, h, -h, 0, 1, 0,
		-h, h, h, 0, 1, 0, h, h, -h, 0, 1, 0, -h, h, -h, 0, 1, 0,
		// -y
		-h, -h, -h, 0, -1, 0, h, -h, -h, 0, -1, 0, h, -h, h, 0, -1, 0,
		-h, -h, -h, 0, -1, 0, h, -h, h, 0, -1, 0, -h, -h, h, 0, -1, 0,
	}
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	win, err := window.New(window.Config{
		Title:      "vanir orbit",
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		logger.Error("failed to create window", zap.Error(err))
		os.Exit(1)
	}
	defer win.Close()

	if err := gl.Init(); err != nil {
		logger.Error("failed to initialize OpenGL", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
	)

	program, err := render.CompileProgram(vertexShader, fragmentShader)
	if err != nil {
		logger.Error("failed to compile shaders", zap.Error(err))
		os.Exit(1)
	}
	defer gl.DeleteProgram(program)

	locMVP := render.MustGetUniform(program, "uMVP")
	locModel := render.MustGetUniform(program, "uModel")
	locColor := render.MustGetUniform(program, "uColor")

	vertices := cubeVertices(float32(cfg.Scene.CubeSize) / 2)

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 6*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 6*4, 3*4)
	defer gl.DeleteBuffers(1, &vbo)
	defer gl.DeleteVertexArrays(1, &vao)

	gl.Enable(gl.DEPTH_TEST)

	cubes := buildScene(&cfg.Scene)

	cam := camera.NewOrbit()
	cam.Distance = cfg.Camera.Distance
	cam.MinDistance = cfg.Camera.MinDistance
	cam.MaxDistance = cfg.Camera.MaxDistance

	// Frame the whole grid on startup.
	var sceneBounds vmath.AABB
	sceneBounds.SetEmpty()
	var wb vmath.AABB
	for i := range cubes {
		sceneBounds.Union(cubes[i].worldBounds(&wb))
	}
	cam.FitToBounds(&sceneBounds)

	var proj, view, viewProj, mvp vmath.Mat4
	var matrixBuf [16]float32

	selected := -1
	rightMouseDown := false
	running := true
	lastTicks := sdl.GetTicks64()

	for running {
		now := sdl.GetTicks64()
		dt := float64(now-lastTicks) / 1000
		lastTicks = now

		dw, dh := win.DrawableSize()
		gl.Viewport(0, 0, int32(dw), int32(dh))

		aspect := float64(dw) / float64(dh)
		proj.SetPerspective(vmath.DegToRad(cfg.Camera.FovDegrees), aspect, cfg.Camera.Near, cfg.Camera.Far)
		cam.ViewMatrix(&view)
		vmath.Mat4Multiply(&viewProj, &proj, &view)

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false

			case *sdl.MouseMotionEvent:
				if rightMouseDown {
					cam.HandleDrag(float64(e.XRel), float64(e.YRel))
				}

			case *sdl.MouseButtonEvent:
				switch e.Button {
				case sdl.BUTTON_RIGHT:
					rightMouseDown = e.State == sdl.PRESSED
				case sdl.BUTTON_LEFT:
					if e.State == sdl.PRESSED {
						ww, wh := win.Size()
						selected = pickCube(cubes, float64(e.X), float64(e.Y), float64(ww), float64(wh), &viewProj)
					}
				}

			case *sdl.MouseWheelEvent:
				cam.HandleZoom(float64(e.Y))

			case *sdl.KeyboardEvent:
				if e.State != sdl.PRESSED {
					break
				}
				switch e.Keysym.Sym {
				case sdl.K_ESCAPE:
					running = false
				case sdl.K_w:
					cam.HandlePan(1, 0, 0)
				case sdl.K_s:
					cam.HandlePan(-1, 0, 0)
				case sdl.K_a:
					cam.HandlePan(0, -1, 0)
				case sdl.K_d:
					cam.HandlePan(0, 1, 0)
				}
			}
		}

		if cfg.Scene.Spin {
			for i := range cubes {
				cubes[i].transform.RotateAxisAngle(&cubes[i].spinAxis, cfg.Scene.SpinSpeed*dt)
			}
		}

		gl.ClearColor(0.08, 0.09, 0.12, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		gl.UseProgram(program)
		gl.BindVertexArray(vao)

		for i := range cubes {
			model := cubes[i].transform.Matrix()
			vmath.Mat4Multiply(&mvp, &viewProj, model)

			mvp.ToFloat32Array(matrixBuf[:], 0)
			gl.UniformMatrix4fv(locMVP, 1, false, &matrixBuf[0])

			model.ToFloat32Array(matrixBuf[:], 0)
			gl.UniformMatrix4fv(locModel, 1, false, &matrixBuf[0])

			if i == selected {
				gl.Uniform3f(locColor, 1.0, 0.55, 0.1)
			} else {
				gl.Uniform3f(locColor, 0.35, 0.55, 0.9)
			}

			gl.DrawArrays(gl.TRIANGLES, 0, 36)
		}

		win.SwapBuffers()
	}

	logger.Info("viewer closed normally")
}

// pickCube returns the index of the nearest cube under the given pixel,
// or -1 when the click hits nothing.
func pickCube(cubes []cube, screenX, screenY, viewportW, viewportH float64, viewProj *vmath.Mat4) int {
	inv := viewProj.Clone().Invert()

	var ray vmath.Ray
	picking.ScreenToRay(screenX, screenY, viewportW, viewportH, inv, &ray)

	best := -1
	bestT := -1.0
	var wb vmath.AABB
	for i := range cubes {
		t := ray.IntersectAABB(cubes[i].worldBounds(&wb))
		if t < 0 {
			continue
		}
		if best == -1 || t < bestT {
			best = i
			bestT = t
		}
	}

	if best >= 0 {
		var hit vmath.Vec3
		ray.At(bestT, &hit)
		logger.Info("picked cube",
			zap.Int("index", best),
			zap.Float64("distance", bestT),
			zap.Float64("x", hit.X),
			zap.Float64("y", hit.Y),
			zap.Float64("z", hit.Z),
		)
	} else {
		logger.Debug("pick missed")
	}
	return best
}

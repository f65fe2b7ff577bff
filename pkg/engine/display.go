package engine

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"

	"mist/pkg/config"
)

// Display presents CPU-rendered frames in an OpenGL window. Each frame is
// converted to RGBA bytes, uploaded as a texture and drawn on a fullscreen
// quad through a small gamma/vignette shader.
type Display struct {
	config config.ViewerConfig
	width  int
	height int

	// OpenGL resources
	shaderProgram uint32
	quadVAO       uint32
	quadVBO       uint32
	frameTexture  uint32

	// Shader uniforms
	gammaLocation    int32
	vignetteLocation int32

	// Size of the currently allocated texture
	texWidth  int
	texHeight int

	// Thread safety
	mutex sync.Mutex
}

// NewDisplay creates a display for the current GL context
func NewDisplay(cfg config.ViewerConfig) (*Display, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %v", err)
	}

	d := &Display{
		config: cfg,
		width:  cfg.Width,
		height: cfg.Height,
	}

	var err error
	if d.shaderProgram, err = createShaderProgram(displayVertexShaderSource, displayFragmentShaderSource); err != nil {
		return nil, err
	}

	gl.UseProgram(d.shaderProgram)
	d.gammaLocation = gl.GetUniformLocation(d.shaderProgram, gl.Str("gamma\x00"))
	d.vignetteLocation = gl.GetUniformLocation(d.shaderProgram, gl.Str("vignetteAmount\x00"))

	d.setupQuad()
	d.setupTexture()

	gl.ClearColor(0.0, 0.0, 0.0, 1.0)

	return d, nil
}

// setupQuad creates the fullscreen quad. Texture coordinates flip vertically
// so the frame's top row lands at the top of the window.
func (d *Display) setupQuad() {
	vertices := []float32{
		// Positions        // Texture coords
		-1.0, -1.0, 0.0, 0.0, 1.0,
		1.0, -1.0, 0.0, 1.0, 1.0,
		1.0, 1.0, 0.0, 1.0, 0.0,
		-1.0, 1.0, 0.0, 0.0, 0.0,
	}

	gl.GenVertexArrays(1, &d.quadVAO)
	gl.GenBuffers(1, &d.quadVBO)

	gl.BindVertexArray(d.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	// Position attribute
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 5*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	// Texture coordinate attribute
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 5*4, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
}

// setupTexture creates the texture the rendered frames are uploaded into
func (d *Display) setupTexture() {
	gl.GenTextures(1, &d.frameTexture)
	gl.BindTexture(gl.TEXTURE_2D, d.frameTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
}

// Render uploads the frame and draws it
func (d *Display) Render(frame *Frame) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	gl.Viewport(0, 0, int32(d.width), int32(d.height))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	if frame == nil {
		return
	}

	rgba := frame.RGBA()

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, d.frameTexture)
	if frame.Width != d.texWidth || frame.Height != d.texHeight {
		// (Re)allocate on first use or after a render-resolution change
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(frame.Width), int32(frame.Height),
			0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
		d.texWidth = frame.Width
		d.texHeight = frame.Height
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(frame.Width), int32(frame.Height),
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	}

	gl.UseProgram(d.shaderProgram)
	gl.Uniform1i(gl.GetUniformLocation(d.shaderProgram, gl.Str("frameTexture\x00")), 0)
	gl.Uniform1f(d.gammaLocation, float32(d.config.Gamma))
	gl.Uniform1f(d.vignetteLocation, float32(d.config.Vignette))

	gl.BindVertexArray(d.quadVAO)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)
	gl.BindVertexArray(0)
}

// UpdateResolution updates the window size used for the viewport
func (d *Display) UpdateResolution(width, height int) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.width = width
	d.height = height
}

// Close releases all OpenGL resources
func (d *Display) Close() {
	gl.DeleteVertexArrays(1, &d.quadVAO)
	gl.DeleteBuffers(1, &d.quadVBO)
	gl.DeleteTextures(1, &d.frameTexture)
	gl.DeleteProgram(d.shaderProgram)
}

// createShaderProgram compiles and links a shader program from source
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		gl.DeleteProgram(program)
		gl.DeleteShader(vertexShader)
		gl.DeleteShader(fragmentShader)

		return 0, fmt.Errorf("shader program linking failed: %v", log)
	}

	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

// compileShader compiles a shader from source
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		gl.DeleteShader(shader)

		return 0, fmt.Errorf("shader compilation failed: %v", log)
	}

	return shader, nil
}

package engine

// Shader sources for the frame display

// Vertex shader for the fullscreen quad
const displayVertexShaderSource = `
#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec2 aTexCoord;

out vec2 TexCoord;

void main() {
    gl_Position = vec4(aPos, 1.0);
    TexCoord = aTexCoord;
}
`

// Fragment shader presenting the rendered frame with gamma correction and a
// soft vignette
const displayFragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
out vec4 FragColor;

uniform sampler2D frameTexture;
uniform float gamma;
uniform float vignetteAmount;

void main() {
    vec4 color = texture(frameTexture, TexCoord);

    // Gamma correction
    color.rgb = pow(color.rgb, vec3(1.0 / gamma));

    // Apply vignette effect
    float distanceFromCenter = length(TexCoord - 0.5) * 2.0;
    color.rgb *= 1.0 - distanceFromCenter * vignetteAmount;

    FragColor = vec4(color.rgb, 1.0);
}
`

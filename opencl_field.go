//go:build opencl

package main

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"

	"ripples/internal/field"
)

// openCLFieldSolver evaluates the superposition on an OpenCL device and
// writes the RGBA frame straight into the renderer's buffer.
type openCLFieldSolver struct {
	context    *cl.Context
	queue      *cl.CommandQueue
	program    *cl.Program
	kernel     *cl.Kernel
	pixelBuf   *cl.MemObject
	tableBuf   *cl.MemObject
	sourceBuf  *cl.MemObject
	width      int
	height     int
	deviceName string

	bound       *field.Renderer
	sourceCount int
	blocksX     int
	blocksY     int
}

const fieldKernelSource = `__kernel void field_frame(
    const int width,
    const int height,
    const int block,
    const int blocks_x,
    const float amplitude,
    const float k,
    const float omega_t,
    const float epsilon,
    const int source_count,
    __global const int* sources,
    __global const uchar* table,
    __global uchar* pixels)
{
    int gid = get_global_id(0);
    int bx = gid % blocks_x;
    int by = gid / blocks_x;
    int x = bx * block;
    int y = by * block;
    if (x >= width || y >= height) {
        return;
    }
    int gray = 0;
    if (source_count > 0) {
        float sum = 0.0f;
        for (int i = 0; i < source_count; i++) {
            float dx = (float)(x - sources[2 * i]);
            float dy = (float)(y - sources[2 * i + 1]);
            float r = sqrt(dx * dx + dy * dy) + epsilon;
            sum += amplitude / sqrt(r) * cos(k * r - omega_t);
        }
        float n = (float)source_count;
        float g = round((sum + n) / (2.0f * n) * 255.0f);
        gray = (int)clamp(g, 0.0f, 255.0f);
    }
    uchar4 c = vload4(gray, table);
    int x_end = min(x + block, width);
    int y_end = min(y + block, height);
    for (int yy = y; yy < y_end; yy++) {
        for (int xx = x; xx < x_end; xx++) {
            vstore4(c, yy * width + xx, pixels);
        }
    }
}`

func newOpenCLFieldSolver(width, height int) (*openCLFieldSolver, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available; ensure a vendor driver is installed and detected by `clinfo`")
	}
	device := pickDevice(platforms, cl.DeviceTypeGPU)
	if device == nil {
		device = pickDevice(platforms, cl.DeviceTypeCPU)
	}
	if device == nil {
		return nil, errors.New("no suitable OpenCL devices found")
	}

	s := &openCLFieldSolver{width: width, height: height, deviceName: device.Name()}
	if s.context, err = cl.CreateContext([]*cl.Device{device}); err != nil {
		return nil, fmt.Errorf("creating OpenCL context: %w", err)
	}
	if s.queue, err = s.context.CreateCommandQueue(device, 0); err != nil {
		s.Close()
		return nil, fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	if s.program, err = s.context.CreateProgramWithSource([]string{fieldKernelSource}); err != nil {
		s.Close()
		return nil, fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := s.program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		s.Close()
		if buildErr, ok := err.(cl.BuildError); ok {
			return nil, fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return nil, fmt.Errorf("building OpenCL program: %w", err)
	}
	if s.kernel, err = s.program.CreateKernel("field_frame"); err != nil {
		s.Close()
		return nil, fmt.Errorf("creating OpenCL kernel: %w", err)
	}
	if s.pixelBuf, err = s.context.CreateEmptyBuffer(cl.MemWriteOnly, width*height*4); err != nil {
		s.Close()
		return nil, fmt.Errorf("allocating pixel buffer: %w", err)
	}
	if s.tableBuf, err = s.context.CreateEmptyBuffer(cl.MemReadOnly, 256*4); err != nil {
		s.Close()
		return nil, fmt.Errorf("allocating palette buffer: %w", err)
	}
	return s, nil
}

func pickDevice(platforms []*cl.Platform, kind cl.DeviceType) *cl.Device {
	for _, p := range platforms {
		devices, err := p.GetDevices(kind)
		if err != nil && err != cl.ErrDeviceNotFound {
			continue
		}
		if len(devices) > 0 {
			return devices[0]
		}
	}
	return nil
}

// bind uploads the sources and palette of r and sets the static kernel arguments.
func (s *openCLFieldSolver) bind(r *field.Renderer) error {
	if r.Width() != s.width || r.Height() != s.height {
		return fmt.Errorf("renderer is %dx%d, solver was built for %dx%d", r.Width(), r.Height(), s.width, s.height)
	}
	opts := r.Options()
	sources := r.Sources()
	coords := make([]int32, 2*max(1, len(sources)))
	for i, src := range sources {
		coords[2*i] = int32(src.X)
		coords[2*i+1] = int32(src.Y)
	}
	if s.sourceBuf != nil {
		s.sourceBuf.Release()
		s.sourceBuf = nil
	}
	byteLen := len(coords) * int(unsafe.Sizeof(int32(0)))
	buf, err := s.context.CreateEmptyBuffer(cl.MemReadOnly, byteLen)
	if err != nil {
		return fmt.Errorf("allocating source buffer: %w", err)
	}
	s.sourceBuf = buf
	if _, err := s.queue.EnqueueWriteBuffer(s.sourceBuf, true, 0, byteLen, unsafe.Pointer(&coords[0]), nil); err != nil {
		return fmt.Errorf("writing source buffer: %w", err)
	}

	table := make([]byte, 256*4)
	for i, c := range field.ColorTable(opts.Palette) {
		cr, cg, cb, ca := c.RGBA()
		table[i*4] = byte(cr >> 8)
		table[i*4+1] = byte(cg >> 8)
		table[i*4+2] = byte(cb >> 8)
		table[i*4+3] = byte(ca >> 8)
	}
	if _, err := s.queue.EnqueueWriteBuffer(s.tableBuf, true, 0, len(table), unsafe.Pointer(&table[0]), nil); err != nil {
		return fmt.Errorf("writing palette buffer: %w", err)
	}

	s.blocksX = (s.width + opts.Block - 1) / opts.Block
	s.blocksY = (s.height + opts.Block - 1) / opts.Block
	s.sourceCount = len(sources)
	if err := s.kernel.SetArgs(
		int32(s.width),
		int32(s.height),
		int32(opts.Block),
		int32(s.blocksX),
		float32(opts.Amplitude),
		float32(r.Wavenumber()),
		float32(0),
		float32(opts.Epsilon),
		int32(s.sourceCount),
		s.sourceBuf,
		s.tableBuf,
		s.pixelBuf,
	); err != nil {
		return fmt.Errorf("setting kernel arguments: %w", err)
	}
	s.bound = r
	return nil
}

// Render computes the frame for r's current time into r's buffer.
func (s *openCLFieldSolver) Render(r *field.Renderer) error {
	if s.bound != r {
		if err := s.bind(r); err != nil {
			s.bound = nil
			return err
		}
	}
	// Reduce the phase on the host so float32 keeps precision as t grows.
	wt := math.Mod(r.Options().Omega*r.Time(), 2*math.Pi)
	if err := s.kernel.SetArgFloat32(6, float32(wt)); err != nil {
		return fmt.Errorf("setting phase: %w", err)
	}
	global := []int{s.blocksX * s.blocksY}
	if _, err := s.queue.EnqueueNDRangeKernel(s.kernel, nil, global, nil, nil); err != nil {
		return fmt.Errorf("enqueueing kernel: %w", err)
	}
	pixels := r.Pixels()
	if _, err := s.queue.EnqueueReadBuffer(s.pixelBuf, true, 0, len(pixels), unsafe.Pointer(&pixels[0]), nil); err != nil {
		return fmt.Errorf("reading pixel buffer: %w", err)
	}
	return nil
}

func (s *openCLFieldSolver) Close() {
	if s.sourceBuf != nil {
		s.sourceBuf.Release()
		s.sourceBuf = nil
	}
	if s.tableBuf != nil {
		s.tableBuf.Release()
		s.tableBuf = nil
	}
	if s.pixelBuf != nil {
		s.pixelBuf.Release()
		s.pixelBuf = nil
	}
	if s.kernel != nil {
		s.kernel.Release()
		s.kernel = nil
	}
	if s.program != nil {
		s.program.Release()
		s.program = nil
	}
	if s.queue != nil {
		s.queue.Release()
		s.queue = nil
	}
	if s.context != nil {
		s.context.Release()
		s.context = nil
	}
	s.bound = nil
}

func (s *openCLFieldSolver) DeviceName() string {
	return s.deviceName
}

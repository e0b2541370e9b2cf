package printer

import (
	"fmt"
	"net"
	"os"
	"time"
)

// Printer is the print surface a receipt document is emitted to.
type Printer interface {
	// Print sends raw ESC/POS bytes to the printer.
	Print(data []byte) error
	// IsConnected returns true if the print surface is reachable.
	IsConnected() bool
}

// --- USB printer (writes to a device file, e.g. /dev/usb/lp0) ---

type usbPrinter struct {
	path string
}

// NewUSBPrinter creates a printer that writes to a USB device file.
func NewUSBPrinter(devicePath string) Printer {
	return &usbPrinter{path: devicePath}
}

func (p *usbPrinter) Print(data []byte) error {
	f, err := os.OpenFile(p.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("printer: failed to open USB device %s: %w", p.path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("printer: failed to write to USB device %s: %w", p.path, err)
	}
	return nil
}

func (p *usbPrinter) IsConnected() bool {
	_, err := os.Stat(p.path)
	return err == nil
}

// --- Network printer (dials TCP, e.g. 192.168.1.100:9100) ---

type networkPrinter struct {
	address string
	timeout time.Duration
}

// NewNetworkPrinter creates a printer that connects via TCP. The address
// must include the port, e.g. "192.168.1.100:9100".
func NewNetworkPrinter(address string) Printer {
	return &networkPrinter{
		address: address,
		timeout: 5 * time.Second,
	}
}

func (p *networkPrinter) Print(data []byte) error {
	conn, err := net.DialTimeout("tcp", p.address, p.timeout)
	if err != nil {
		return fmt.Errorf("printer: failed to connect to %s: %w", p.address, err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))

	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("printer: failed to write to %s: %w", p.address, err)
	}
	return nil
}

func (p *networkPrinter) IsConnected() bool {
	conn, err := net.DialTimeout("tcp", p.address, 2*time.Second)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// --- Null printer (no-op, used when no printer is configured or the
// configured one cannot be created) ---

type nullPrinter struct{}

// NewNullPrinter creates a no-op print surface.
func NewNullPrinter() Printer {
	return &nullPrinter{}
}

func (p *nullPrinter) Print(data []byte) error {
	return nil
}

func (p *nullPrinter) IsConnected() bool {
	return false
}

// NewPrinterFromConfig creates the appropriate Printer based on type:
// "usb", "network", or "none".
func NewPrinterFromConfig(printerType, usbPath, address string) (Printer, error) {
	switch printerType {
	case "usb":
		if usbPath == "" {
			return nil, fmt.Errorf("printer: USB path is required for USB printer type")
		}
		return NewUSBPrinter(usbPath), nil
	case "network":
		if address == "" {
			return nil, fmt.Errorf("printer: address is required for network printer type")
		}
		return NewNetworkPrinter(address), nil
	case "none", "":
		return NewNullPrinter(), nil
	default:
		return nil, fmt.Errorf("printer: unknown printer type %q (use usb, network, or none)", printerType)
	}
}

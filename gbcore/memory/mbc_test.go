package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fakeROM(banks int) []byte {
	rom := make([]byte, banks*0x4000)
	for bank := 0; bank < banks; bank++ {
		for i := 0; i < 0x4000; i++ {
			rom[bank*0x4000+i] = byte(bank)
		}
	}
	return rom
}

func TestMBCNone(t *testing.T) {
	rom := make([]byte, 0x8000)
	for i := range rom {
		rom[i] = byte(i)
	}
	mbc := NewMBC(MBCNone, len(rom), 0)

	assert.Equal(t, uint8(0x00), mbc.ReadROM(rom, 0x0000))
	assert.Equal(t, uint8(0xFF), mbc.ReadRAM(nil, 0xA000))

	mbc.WriteReg(0x2000, 0x05) // ignored, no banking
	assert.Equal(t, rom[0x100], mbc.ReadROM(rom, 0x100))
}

func TestMBC1BankSwitch(t *testing.T) {
	rom := fakeROM(8)
	mbc := NewMBC(MBCOne, len(rom), 1)

	assert.Equal(t, uint8(0), mbc.ReadROM(rom, 0x0000), "bank 0 fixed")
	assert.Equal(t, uint8(1), mbc.ReadROM(rom, 0x4000), "defaults to bank 1")

	mbc.WriteReg(0x2100, 0x05)
	assert.Equal(t, uint8(5), mbc.ReadROM(rom, 0x4000))

	t.Run("bank 0 substitutes to 1", func(t *testing.T) {
		mbc.WriteReg(0x2100, 0x00)
		assert.Equal(t, uint8(1), mbc.ReadROM(rom, 0x4000))
	})

	t.Run("ram gated by enable latch", func(t *testing.T) {
		eram := make([]byte, 0x2000)
		assert.Equal(t, uint8(0xFF), mbc.ReadRAM(eram, 0xA000))

		mbc.WriteReg(0x0000, 0x0A)
		mbc.WriteRAM(eram, 0xA000, 0x42)
		assert.Equal(t, uint8(0x42), mbc.ReadRAM(eram, 0xA000))

		mbc.WriteReg(0x0000, 0x00)
		assert.Equal(t, uint8(0xFF), mbc.ReadRAM(eram, 0xA000))
	})
}

func TestMBC3RTCAndRAM(t *testing.T) {
	rom := fakeROM(4)
	mbc := NewMBC(MBCThree, len(rom), 2)
	eram := make([]byte, 0x4000)

	mbc.WriteReg(0x2000, 0x03)
	assert.Equal(t, uint8(3), mbc.ReadROM(rom, 0x4000))

	mbc.WriteReg(0x0000, 0x0A)
	mbc.WriteReg(0x4000, 0x01)
	mbc.WriteRAM(eram, 0xA000, 0x7B)
	assert.Equal(t, uint8(0x7B), mbc.ReadRAM(eram, 0xA000))

	mbc.WriteReg(0x4000, 0x08)
	mbc.WriteRAM(eram, 0xA000, 0x55)
	assert.Equal(t, uint8(0x55), mbc.ReadRAM(eram, 0xA000), "RTC seconds register")

	mbc.WriteReg(0x4000, 0x01)
	assert.Equal(t, uint8(0x7B), mbc.ReadRAM(eram, 0xA000), "RAM bank untouched by RTC write")
}

func TestMBC5NoBankZeroSubstitution(t *testing.T) {
	rom := fakeROM(600)
	mbc := NewMBC(MBCFive, len(rom), 0)

	mbc.WriteReg(0x2000, 0x00)
	assert.Equal(t, uint8(0), mbc.ReadROM(rom, 0x4000), "MBC5 allows bank 0 directly")

	mbc.WriteReg(0x2000, 0xFF)
	mbc.WriteReg(0x3000, 0x01)
	assert.Equal(t, uint8(0xFF), mbc.ReadROM(rom, 0x4000), "bank 511 truncated into the fake rom's byte(bank) fill pattern")
}

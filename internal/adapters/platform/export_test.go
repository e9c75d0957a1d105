package platform

var MachineFromArch = machineFromArch
